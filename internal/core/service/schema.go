package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rodeioapp/internal/core/port"
)

// SchemaService makes sure the registrations table exists before the first request.
type SchemaService struct {
	schema port.SchemaInitializer
	logger *zap.Logger
}

func NewSchemaService(schema port.SchemaInitializer, logger *zap.Logger) *SchemaService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SchemaService{
		schema: schema,
		logger: logger,
	}
}

// Ensure is best-effort: a failure is logged and the process keeps serving,
// every storage call will then fail on its own and be reported per request.
func (ss *SchemaService) Ensure(ctx context.Context) {
	if err := ss.Migrate(ctx); err != nil {
		ss.logger.Error("Failed to connect to the database or create the registrations table", zap.Error(err))
		return
	}

	ss.logger.Info("Database connected and registrations table verified")
}

// Migrate is the strict variant used by the migrate command.
func (ss *SchemaService) Migrate(ctx context.Context) error {
	if err := ss.schema.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	return nil
}
