package routes

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"rodeioapp/internal/adapter/http/handler"
	"rodeioapp/internal/adapter/http/middleware"
	"rodeioapp/internal/adapter/logger"
	"rodeioapp/internal/core/telemetry"
)

type HandlersConfig struct {
	RegistrationHandler *handler.RegistrationHandler
	StaticDir           string
}

func SetupRouter(handlers HandlersConfig, serviceName string, metrics *telemetry.AppMetrics, log *logger.LokiLogger) *gin.Engine {
	router := gin.New()

	middleware.SetupGinMiddleware(router, serviceName, metrics, log)

	router.Use(gin.Recovery())

	setupPublicRoutes(router, handlers.RegistrationHandler)

	router.NoRoute(staticFiles(handlers.StaticDir))

	return router
}

func setupPublicRoutes(router *gin.Engine, registrationHandler *handler.RegistrationHandler) {
	public := router.Group("/")
	{
		public.GET("/", registrationHandler.Index)
		public.HEAD("/", registrationHandler.Index)
		public.POST("/inscrever", registrationHandler.Submit)
	}
}

// staticFiles serves regular files under dir for any unmatched GET or HEAD.
// Directories are never listed.
func staticFiles(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}

		if dir == "" {
			c.Status(http.StatusNotFound)
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Request.URL.Path)))

		info, err := os.Stat(name)
		if err != nil || info.IsDir() {
			c.Status(http.StatusNotFound)
			return
		}

		c.File(name)
	}
}
