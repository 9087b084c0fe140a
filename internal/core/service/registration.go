package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"rodeioapp/internal/core/domain"
	"rodeioapp/internal/core/port"
	"rodeioapp/internal/core/telemetry"
)

const registrationService = "registration"

type RegistrationService struct {
	repo      port.RegistrationRepository
	validator port.Validator
	telemetry port.Telemetry
}

func NewRegistrationService(repo port.RegistrationRepository, validator port.Validator, probe port.Telemetry) *RegistrationService {
	if probe == nil {
		probe = telemetry.NewNoOpProbe()
	}

	return &RegistrationService{
		repo:      repo,
		validator: validator,
		telemetry: probe,
	}
}

// Register validates the submission and stores it. Validation failures return
// ErrMissingFields without touching storage; storage failures are wrapped in
// ErrStorage and never retried.
func (rs *RegistrationService) Register(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	start := time.Now()

	ctx, span := rs.telemetry.StartServiceSpan(ctx, registrationService, "Register", nil)
	defer span.End()

	reg = reg.Normalize()

	if err := rs.validator.ValidateStruct(reg); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrMissingFields, err)
		rs.telemetry.RecordServiceOperation(ctx, registrationService, "Register", time.Since(start), err)

		return domain.Registration{}, err
	}

	saved, err := rs.repo.Create(ctx, reg)
	if err == nil && !saved.IsPersisted() {
		err = fmt.Errorf("%w: no id assigned to registration", domain.ErrStorage)
	}

	if err != nil {
		if !errors.Is(err, domain.ErrStorage) {
			err = fmt.Errorf("%w: %w", domain.ErrStorage, err)
		}

		span.RecordError(err)
		rs.telemetry.RecordError(ctx, "registration.Register", err, nil)
		rs.telemetry.RecordServiceOperation(ctx, registrationService, "Register", time.Since(start), err)

		return domain.Registration{}, err
	}

	rs.telemetry.RecordServiceOperation(ctx, registrationService, "Register", time.Since(start), nil)
	rs.telemetry.RecordBusinessEvent(ctx, "registration.created", "registration", strconv.FormatInt(saved.ID, 10), nil)

	return saved, nil
}
