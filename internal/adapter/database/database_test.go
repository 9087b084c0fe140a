package database

import (
	"context"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"rodeioapp/internal/config"
	"rodeioapp/internal/core/domain"
	"rodeioapp/pkg/test/factory"
)

func TestKindOf(t *testing.T) {
	RegisterTestingT(t)

	Expect(KindOf("")).To(Equal(KindUnavailable))
	Expect(KindOf("sqlite:///tmp/rodeio.db")).To(Equal(KindSqlite))
	Expect(KindOf("file:rodeio.db")).To(Equal(KindSqlite))
	Expect(KindOf("postgres://localhost/rodeio")).To(Equal(KindPostgres))
	Expect(KindOf("host=localhost dbname=rodeio")).To(Equal(KindPostgres))
}

func TestOpen_EmptyURL(t *testing.T) {
	RegisterTestingT(t)

	store, err := Open(context.Background(), config.DatabaseConfig{}, nil, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Create(context.Background(), factory.NewRegistration())
	Expect(err).To(MatchError(domain.ErrStorageNotConfigured))
	Expect(store.EnsureSchema(context.Background())).To(MatchError(domain.ErrStorageNotConfigured))
}

func TestOpen_Sqlite(t *testing.T) {
	RegisterTestingT(t)

	url := "sqlite://" + filepath.Join(t.TempDir(), "rodeio.db")

	store, err := Open(context.Background(), config.DatabaseConfig{URL: url, MaxConns: 1}, nil, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.EnsureSchema(context.Background()))

	saved, err := store.Create(context.Background(), factory.NewRegistration())
	Expect(err).To(BeNil())
	Expect(saved.ID).To(Equal(int64(1)))
}

func TestOpen_PostgresIsLazy(t *testing.T) {
	store, err := Open(context.Background(), config.DatabaseConfig{
		URL:      "postgres://rodeio@127.0.0.1:1/rodeio?sslmode=disable",
		MaxConns: 2,
	}, nil, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
