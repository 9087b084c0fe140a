package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Port        string
	Environment string
	StaticDir   string

	Database  DatabaseConfig
	Telemetry TelemetryConfig
	Event     EventConfig
}

type DatabaseConfig struct {
	URL      string
	MaxConns int32
}

type TelemetryConfig struct {
	ServiceName    string
	ServiceVersion string
	MetricsPort    string
	OTLPEndpoint   string
	LokiURL        string
}

type EventConfig struct {
	Title    string
	Location string
	Date     string
	Hours    string
	Year     string
}

func (c *AppConfig) Addr() string {
	return ":" + c.Port
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("STATIC_DIR", "resources")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_MAX_CONNS", 10)

	v.SetDefault("SERVICE_NAME", "rodeioapp")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
	v.SetDefault("METRICS_PORT", "")
	v.SetDefault("OTLP_ENDPOINT", "")
	v.SetDefault("LOKI_URL", "")

	v.SetDefault("EVENT_TITLE", "Rodeio da Paola")
	v.SetDefault("EVENT_LOCATION", "Guaíba - RS")
	v.SetDefault("EVENT_DATE", "01/12/2025")
	v.SetDefault("EVENT_HOURS", "08h - 14h")
	v.SetDefault("EVENT_YEAR", "2025")
}

// Load reads the configuration from the environment and, when one was set on v, the config file.
func Load(v *viper.Viper) (*AppConfig, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	maxConns := v.GetInt("DATABASE_MAX_CONNS")
	if maxConns <= 0 {
		return nil, fmt.Errorf("invalid DATABASE_MAX_CONNS: %d", maxConns)
	}

	cfg := &AppConfig{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENVIRONMENT"),
		StaticDir:   v.GetString("STATIC_DIR"),
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: int32(maxConns),
		},
		Telemetry: TelemetryConfig{
			ServiceName:    v.GetString("SERVICE_NAME"),
			ServiceVersion: v.GetString("SERVICE_VERSION"),
			MetricsPort:    v.GetString("METRICS_PORT"),
			OTLPEndpoint:   v.GetString("OTLP_ENDPOINT"),
			LokiURL:        v.GetString("LOKI_URL"),
		},
		Event: EventConfig{
			Title:    v.GetString("EVENT_TITLE"),
			Location: v.GetString("EVENT_LOCATION"),
			Date:     v.GetString("EVENT_DATE"),
			Hours:    v.GetString("EVENT_HOURS"),
			Year:     v.GetString("EVENT_YEAR"),
		},
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}

	return cfg, nil
}

func GetDefaultConfig() *AppConfig {
	cfg, _ := Load(viper.New())
	return cfg
}
