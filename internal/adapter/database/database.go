package database

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"rodeioapp/internal/adapter/database/postgres"
	pgrepo "rodeioapp/internal/adapter/database/postgres/repository"
	"rodeioapp/internal/adapter/database/sqlite"
	sqliterepo "rodeioapp/internal/adapter/database/sqlite/repository"
	"rodeioapp/internal/adapter/database/unavailable"
	"rodeioapp/internal/config"
	"rodeioapp/internal/core/port"
)

// Store is the storage backend handed to the registration service and the schema initializer.
type Store interface {
	port.RegistrationRepository
	port.SchemaInitializer
	Close() error
}

type Kind string

const (
	KindUnavailable Kind = "unavailable"
	KindSqlite      Kind = "sqlite"
	KindPostgres    Kind = "postgres"
)

func KindOf(url string) Kind {
	switch {
	case url == "":
		return KindUnavailable
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"):
		return KindSqlite
	default:
		return KindPostgres
	}
}

// Open picks the adapter from the connection string. An empty string yields a store whose
// operations all fail, so the process still starts and serves the page.
func Open(ctx context.Context, cfg config.DatabaseConfig, telemetry port.Telemetry, logger zerolog.Logger) (Store, error) {
	switch KindOf(cfg.URL) {
	case KindUnavailable:
		return unavailable.New(), nil

	case KindSqlite:
		db, err := sqlite.Open(cfg.URL, logger)
		if err != nil {
			return nil, err
		}

		return &store{
			RegistrationRepository: sqliterepo.NewRegistrationRepository(db, telemetry),
			SchemaInitializer:      db,
			close:                  db.Close,
		}, nil

	default:
		db, err := postgres.Open(ctx, cfg.URL, cfg.MaxConns)
		if err != nil {
			return nil, err
		}

		return &store{
			RegistrationRepository: pgrepo.NewRegistrationRepository(db, telemetry),
			SchemaInitializer:      db,
			close:                  db.Close,
		}, nil
	}
}

type store struct {
	port.RegistrationRepository
	port.SchemaInitializer
	close func() error
}

func (s *store) Close() error {
	return s.close()
}
