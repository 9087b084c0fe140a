package http

import (
	"rodeioapp/internal/adapter/http/handler"
	"rodeioapp/internal/adapter/http/page"
	"rodeioapp/internal/adapter/http/validation"
	"rodeioapp/internal/adapter/logger"
	"rodeioapp/internal/config"
	"rodeioapp/internal/core/port"
	"rodeioapp/internal/core/service"
	"rodeioapp/internal/core/telemetry"
)

// Storage is what the container needs from a storage backend.
type Storage interface {
	port.RegistrationRepository
	port.SchemaInitializer
}

type Container struct {
	RegistrationService *service.RegistrationService
	SchemaService       *service.SchemaService

	RegistrationHandler *handler.RegistrationHandler
}

func NewContainer(store Storage, cfg *config.AppConfig, probe port.Telemetry, metrics *telemetry.AppMetrics, log *logger.LokiLogger) (*Container, error) {
	if log == nil {
		log = logger.NewNop()
	}

	renderer, err := page.New(page.Event{
		Title:    cfg.Event.Title,
		Location: cfg.Event.Location,
		Date:     cfg.Event.Date,
		Hours:    cfg.Event.Hours,
		Year:     cfg.Event.Year,
	})
	if err != nil {
		return nil, err
	}

	validator := validation.New()

	registrationSvc := service.NewRegistrationService(store, validator, probe)
	schemaSvc := service.NewSchemaService(store, log.Zap())

	registrationHandler := handler.NewRegistrationHandler(registrationSvc, renderer, validator, metrics, log)

	return &Container{
		RegistrationService: registrationSvc,
		SchemaService:       schemaSvc,
		RegistrationHandler: registrationHandler,
	}, nil
}
