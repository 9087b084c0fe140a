package factory

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestNewRegistration_Overrides(t *testing.T) {
	RegisterTestingT(t)

	reg := NewRegistration(map[string]any{"Name": "Ana"})

	Expect(reg.Name).To(Equal("Ana"))
	Expect(reg.Email).To(HaveSuffix("@example.com"))
	Expect(reg.Phone).To(HavePrefix("51"))
	Expect(reg.ID).To(Equal(int64(0)))

	form := NewRegistrationForm(reg)
	Expect(form.Get("name")).To(Equal("Ana"))
	Expect(form.Get("phone")).To(Equal(reg.Phone))
}
