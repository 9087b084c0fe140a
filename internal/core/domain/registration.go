package domain

import (
	"strings"
	"time"
)

// Registration is one sign-up for the event. Rows are written once and never updated.
type Registration struct {
	ID        int64
	Name      string `validate:"required"`
	Email     string `validate:"required"`
	Phone     string `validate:"required"`
	CreatedAt time.Time
}

func (r Registration) Normalize() Registration {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)

	return r
}

func (r *Registration) IsPersisted() bool {
	return r.ID > 0
}
