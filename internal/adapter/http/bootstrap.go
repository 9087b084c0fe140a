package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rodeioapp/internal/adapter/http/routes"
	"rodeioapp/internal/adapter/logger"
	"rodeioapp/internal/config"
	"rodeioapp/internal/core/telemetry"
)

const (
	serverTimeout   = 15 * time.Second
	shutdownTimeout = 15 * time.Second
)

// App is the whole web application as a single http.Handler. Run serves it directly;
// a host that brings its own server mounts Handler instead.
type App struct {
	router *gin.Engine
	config *config.AppConfig
	logger *logger.LokiLogger
}

func NewApp(container *Container, metrics *telemetry.AppMetrics, log *logger.LokiLogger, cfg *config.AppConfig) *App {
	if log == nil {
		log = logger.NewNop()
	}

	router := routes.SetupRouter(routes.HandlersConfig{
		RegistrationHandler: container.RegistrationHandler,
		StaticDir:           cfg.StaticDir,
	}, cfg.Telemetry.ServiceName, metrics, log)

	return &App{
		router: router,
		config: cfg,
		logger: log,
	}
}

func (a *App) Handler() http.Handler {
	return a.router
}

// Run listens on the configured port until ctx is cancelled, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.config.Addr(),
		Handler:      a.router,
		ReadTimeout:  serverTimeout,
		WriteTimeout: serverTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		a.logger.Zap().Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.String("environment", a.config.Environment),
			zap.String("url", "http://localhost"+srv.Addr),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			a.logger.Zap().Error("Server failed to start", zap.Error(err))
			return err
		}
		return nil

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		a.logger.Zap().Info("Server shutting down")

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		return nil
	}
}
