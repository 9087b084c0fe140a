package repository

import (
	"context"
	"fmt"
	"time"

	"rodeioapp/internal/adapter/database/postgres"
	"rodeioapp/internal/core/domain"
	"rodeioapp/internal/core/port"
	tel "rodeioapp/internal/core/telemetry"
)

type RegistrationRepository struct {
	db        *postgres.DB
	telemetry port.Telemetry
}

func NewRegistrationRepository(db *postgres.DB, telemetry port.Telemetry) port.RegistrationRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &RegistrationRepository{db: db, telemetry: telemetry}
}

func (rr *RegistrationRepository) Create(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	ctx, span := rr.telemetry.StartRepositorySpan(ctx, "Create", "registration", map[string]interface{}{
		"db.system":    "postgresql",
		"db.table":     "registrations",
		"db.operation": "INSERT",
	})
	defer span.End()

	startTime := time.Now()

	fail := func(err error) (domain.Registration, error) {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		rr.telemetry.RecordRepositoryOperation(ctx, "Create", "registration", time.Since(startTime), err)

		return domain.Registration{}, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	stmt, args, err := rr.db.QueryBuilder.Insert("registrations").
		Columns("name", "email", "phone").
		Values(reg.Name, reg.Email, reg.Phone).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fail(fmt.Errorf("build insert: %w", err))
	}

	conn, err := rr.db.Acquire(ctx)
	if err != nil {
		return fail(fmt.Errorf("acquire connection: %w", err))
	}
	defer conn.Release()

	saved := reg
	if err := conn.QueryRow(ctx, stmt, args...).Scan(&saved.ID, &saved.CreatedAt); err != nil {
		return fail(fmt.Errorf("insert registration: %w", err))
	}

	span.SetAttributes(map[string]interface{}{
		"registration.id": saved.ID,
	})
	rr.telemetry.RecordRepositoryOperation(ctx, "Create", "registration", time.Since(startTime), nil)

	return saved, nil
}
