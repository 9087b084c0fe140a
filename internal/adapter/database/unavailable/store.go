package unavailable

import (
	"context"

	"rodeioapp/internal/core/domain"
)

// Store stands in for the database when no connection string is configured.
// Every operation fails with domain.ErrStorageNotConfigured.
type Store struct{}

func New() *Store {
	return &Store{}
}

func (s *Store) Create(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	return domain.Registration{}, domain.ErrStorageNotConfigured
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	return domain.ErrStorageNotConfigured
}

func (s *Store) Close() error {
	return nil
}
