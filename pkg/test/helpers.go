package test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"rodeioapp/internal/adapter/database/sqlite"
	"rodeioapp/internal/core/domain"
)

// InitTestDB opens a sqlite database in a temporary directory with the schema applied.
// It is closed when the test ends.
func InitTestDB(t testing.TB) *sqlite.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rodeio_test.db")

	db, err := sqlite.Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	if err := db.EnsureSchema(t.Context()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func CountRegistrations(t testing.TB, db *sqlite.DB) int {
	t.Helper()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM registrations").Scan(&count); err != nil {
		t.Fatalf("count registrations: %v", err)
	}

	return count
}

func FindRegistration(t testing.TB, db *sqlite.DB, id int64) domain.Registration {
	t.Helper()

	var (
		reg       domain.Registration
		createdAt time.Time
	)

	err := db.QueryRow("SELECT id, name, email, phone, created_at FROM registrations WHERE id = ?", id).
		Scan(&reg.ID, &reg.Name, &reg.Email, &reg.Phone, &createdAt)
	if err != nil && err != sql.ErrNoRows {
		t.Fatalf("find registration %d: %v", id, err)
	}

	reg.CreatedAt = createdAt

	return reg
}
