package errs

import (
	"fmt"
	"net/http"
	"strings"
)

// FieldError names one failing field and why it failed.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// NewValidationError builds a 400 listing every failing field. Validation
// runs to completion before storage is touched, so the response names all
// problems at once rather than the first one hit.
func NewValidationError(fields ...FieldError) *ApiErr {
	reasons := make([]string, len(fields))
	for i, f := range fields {
		reasons[i] = f.String()
	}
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    strings.Join(reasons, "; "),
		Fields:     fields,
	}
}

// FieldList accumulates field errors during request validation.
type FieldList struct {
	fields []FieldError
}

// Add records one failing field.
func (l *FieldList) Add(field, message string) {
	l.fields = append(l.fields, FieldError{Field: field, Message: message})
}

// Err returns the aggregate validation error, or nil when every check passed.
func (l *FieldList) Err() *ApiErr {
	if len(l.fields) == 0 {
		return nil
	}
	return NewValidationError(l.fields...)
}
