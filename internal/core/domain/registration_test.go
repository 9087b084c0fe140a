package domain

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

func TestRegistration_Normalize(t *testing.T) {
	RegisterTestingT(t)

	reg := Registration{Name: "  Paola ", Email: "\tpaola@example.com\n", Phone: " 51 99999-0000 "}.Normalize()

	Expect(reg.Name).To(Equal("Paola"))
	Expect(reg.Email).To(Equal("paola@example.com"))
	Expect(reg.Phone).To(Equal("51 99999-0000"))
}

func TestRegistration_NormalizeBlankBecomesEmpty(t *testing.T) {
	reg := Registration{Name: "   ", Email: "a@b.c", Phone: "1"}.Normalize()

	assert.Empty(t, reg.Name)
}

func TestRegistration_IsPersisted(t *testing.T) {
	t.Run("should return false before insert", func(t *testing.T) {
		reg := Registration{}
		assert.False(t, reg.IsPersisted())
	})

	t.Run("should return true once an id is assigned", func(t *testing.T) {
		reg := Registration{ID: 7}
		assert.True(t, reg.IsPersisted())
	})
}

func TestOutcomeOf(t *testing.T) {
	RegisterTestingT(t)

	Expect(OutcomeOf(nil)).To(Equal(OutcomeSuccess))
	Expect(OutcomeOf(ErrMissingFields)).To(Equal(OutcomeInvalid))
	Expect(OutcomeOf(fmt.Errorf("wrap: %w", ErrMissingFields))).To(Equal(OutcomeInvalid))
	Expect(OutcomeOf(fmt.Errorf("%w: %w", ErrStorage, errors.New("dial tcp: refused")))).To(Equal(OutcomeFailed))
	Expect(OutcomeOf(ErrStorageNotConfigured)).To(Equal(OutcomeFailed))
}

func TestOutcome_Message(t *testing.T) {
	RegisterTestingT(t)

	Expect(OutcomeSuccess.Message()).To(Equal("Inscrição enviada com sucesso!"))
	Expect(OutcomeInvalid.Message()).To(Equal("Erro: todos os campos são obrigatórios."))
	Expect(OutcomeFailed.Message()).To(Equal("Erro ao salvar inscrição. Tente novamente."))
	Expect(OutcomeNone.Message()).To(BeEmpty())

	Expect(OutcomeSuccess.Message()).To(ContainSubstring("sucesso"))
	Expect(OutcomeInvalid.Message()).NotTo(ContainSubstring("sucesso"))
	Expect(OutcomeFailed.Message()).NotTo(ContainSubstring("sucesso"))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "invalid", OutcomeInvalid.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "none", OutcomeNone.String())
}
