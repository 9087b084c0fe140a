package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"rodeioapp/internal/adapter/database"
	apphttp "rodeioapp/internal/adapter/http"
	"rodeioapp/internal/adapter/logger"
	"rodeioapp/internal/adapter/telemetry"
	"rodeioapp/internal/config"
	"rodeioapp/internal/core/service"
)

var (
	cfgFile string
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:               "rodeio",
	Short:             "Event registration page",
	Long:              `Serves the event registration form and stores every submission in the registrations table.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the registrations table and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml)")
	rootCmd.PersistentFlags().String("port", "", "HTTP port (overrides PORT)")

	_ = viper.BindPFlag("PORT", rootCmd.PersistentFlags().Lookup("port"))

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg = loaded
	return nil
}

func newSQLLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if !cfg.IsProduction() {
		level = zerolog.DebugLevel
	}

	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("component", "sql").Logger()
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, err := logger.NewLokiLogger(cfg.Telemetry.ServiceName, cfg.Telemetry.LokiURL)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	tel, err := telemetry.NewContainer(ctx, telemetry.Config{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: cfg.Telemetry.ServiceVersion,
		Environment:    cfg.Environment,
		MetricsPort:    cfg.Telemetry.MetricsPort,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
	}, log.Zap())
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Zap().Error("Failed to shut down telemetry", zap.Error(err))
		}
	}()

	tel.AppMetrics.StartSystemMetrics(ctx)
	probe := tel.NewTelemetryProbe()

	store, err := database.Open(ctx, cfg.Database, probe, newSQLLogger())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	container, err := apphttp.NewContainer(store, cfg, probe, tel.AppMetrics, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	container.SchemaService.Ensure(ctx)

	app := apphttp.NewApp(container, tel.AppMetrics, log, cfg)

	if err := app.Run(ctx); err != nil {
		return err
	}

	log.Zap().Info("Shutting down gracefully...")
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log, err := logger.NewLokiLogger(cfg.Telemetry.ServiceName, cfg.Telemetry.LokiURL)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	store, err := database.Open(cmd.Context(), cfg.Database, nil, newSQLLogger())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	if err := service.NewSchemaService(store, log.Zap()).Migrate(cmd.Context()); err != nil {
		log.Zap().Error("Migration failed", zap.Error(err))
		return err
	}

	log.Zap().Info("Registrations table verified")
	return nil
}
