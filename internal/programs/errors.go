package programs

import (
	"errors"

	"github.com/2beens/trainerhub/internal/request"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrOrdinalTaken = errors.New("ordinal already taken")

	ErrInvalidInput = request.ErrInvalidInput
)

// ValidationError carries a message per offending field.
type ValidationError = request.ValidationError

func NewValidationError(field, message string) *ValidationError {
	return request.NewValidationError(field, message)
}
