package domain

import "errors"

var (
	ErrMissingFields        = errors.New("registration: missing required fields")
	ErrStorage              = errors.New("registration: storage failure")
	ErrStorageNotConfigured = errors.New("registration: storage connection string is not configured")
)
