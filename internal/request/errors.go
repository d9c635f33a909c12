package request

import (
	"errors"
	"sort"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// ValidationError carries a message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Fields: map[string]string{field: message},
	}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var sb strings.Builder
	sb.WriteString(ErrInvalidInput.Error())
	for i, f := range fields {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(f + " " + e.Fields[f])
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
