package port

import (
	"context"

	"rodeioapp/internal/core/domain"
)

type RegistrationRepository interface {
	// Create acquires one pooled connection, inserts the row and releases the
	// connection before returning. The returned registration carries the
	// storage-assigned ID and CreatedAt.
	Create(ctx context.Context, reg domain.Registration) (domain.Registration, error)
}

type SchemaInitializer interface {
	EnsureSchema(ctx context.Context) error
}

type RegistrationService interface {
	Register(ctx context.Context, reg domain.Registration) (domain.Registration, error)
}
