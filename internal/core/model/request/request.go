package request

import (
	"strings"

	"rodeioapp/internal/core/domain"
)

// RegistrationRequest is the form posted to /inscrever. The page posts name/email/phone;
// nome and telefone are the field names of the first version of the form.
type RegistrationRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Nome     string `form:"nome"`
	Telefone string `form:"telefone"`
}

func (r RegistrationRequest) ToDomain() domain.Registration {
	reg := domain.Registration{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}

	if strings.TrimSpace(reg.Name) == "" {
		reg.Name = r.Nome
	}

	if strings.TrimSpace(reg.Phone) == "" {
		reg.Phone = r.Telefone
	}

	return reg
}
