package domain

import "errors"

const (
	MessageMissingFields = "Erro: todos os campos são obrigatórios."
	MessageSuccess       = "Inscrição enviada com sucesso!"
	MessageTryAgain      = "Erro ao salvar inscrição. Tente novamente."
)

// Outcome is the terminal state of one form submission.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeInvalid
	OutcomeFailed
)

func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrMissingFields):
		return OutcomeInvalid
	default:
		return OutcomeFailed
	}
}

func (o Outcome) Message() string {
	switch o {
	case OutcomeSuccess:
		return MessageSuccess
	case OutcomeInvalid:
		return MessageMissingFields
	case OutcomeFailed:
		return MessageTryAgain
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeFailed:
		return "failed"
	default:
		return "none"
	}
}
