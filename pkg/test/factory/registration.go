package factory

import (
	"fmt"
	"math/rand/v2"
	"net/url"

	fab "github.com/Goldziher/fabricator"

	"rodeioapp/internal/core/domain"
)

// NewRegistration builds a valid, unsaved registration. customData overrides fields by name.
func NewRegistration(customData ...map[string]any) domain.Registration {
	instance := fab.New(domain.Registration{})

	defaults := map[string]any{
		"ID":    int64(0),
		"Name":  fmt.Sprintf("Peão %d", rand.IntN(100000)),
		"Email": fmt.Sprintf("peao%d@example.com", rand.IntN(100000)),
		"Phone": fmt.Sprintf("51%09d", rand.IntN(1000000000)),
	}

	for _, data := range customData {
		for field, value := range data {
			defaults[field] = value
		}
	}

	return instance.Build(defaults)
}

// NewRegistrationForm returns the form values a browser would post for reg.
func NewRegistrationForm(reg domain.Registration) url.Values {
	return url.Values{
		"name":  {reg.Name},
		"email": {reg.Email},
		"phone": {reg.Phone},
	}
}
