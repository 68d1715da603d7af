package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiErrUnwrapsSentinels(t *testing.T) {
	err := NewDatabaseError("find", "projects", errors.New("connection refused"))

	assert.True(t, errors.Is(err, ErrDatabaseConnection))
	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode)
}

func TestNewDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"duplicate key maps to conflict", errors.New(`duplicate key value violates unique constraint "skills_name_key"`), http.StatusConflict},
		{"record not found maps to not found", errors.New("record not found"), http.StatusNotFound},
		{"connection failure maps to unavailable", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
		{"anything else maps to internal", errors.New("syntax error at or near"), http.StatusInternalServerError},
		{"nil cause maps to internal", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("update", "skill", tt.cause)
			assert.Equal(t, tt.wantStatus, err.StatusCode)
		})
	}
}

func TestFieldListAggregates(t *testing.T) {
	var fields FieldList
	assert.Nil(t, fields.Err())

	fields.Add("name", "is required")
	fields.Add("level", "must be between 0 and 100")

	err := fields.Err()
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.True(t, errors.Is(err, ErrValidation))
	require.Len(t, err.Fields, 2)
	assert.Equal(t, "name", err.Fields[0].Field)
	assert.Contains(t, err.Details, "level: must be between 0 and 100")
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	inner := NewNotFound("project")
	outer := NewInternalErrorWithCause("lookup failed", inner)

	full := outer.GetFullError()
	assert.Contains(t, full, "lookup failed")
	assert.Contains(t, full, "project not found")
}

func TestInvalidCredentialsErrorMessage(t *testing.T) {
	err := NewInvalidCredentialsError()
	assert.Equal(t, http.StatusUnauthorized, err.StatusCode)
	// The message is intentionally identical for bad usernames and bad
	// passwords, so responses don't reveal which half was wrong.
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestStorageErrors(t *testing.T) {
	tooLarge := NewFileTooLargeError(10 << 20)
	assert.Equal(t, http.StatusBadRequest, tooLarge.StatusCode)
	assert.Contains(t, tooLarge.Error(), "file too large")

	unsupported := NewUnsupportedFileError("application/msword", "application/pdf")
	assert.Equal(t, http.StatusBadRequest, unsupported.StatusCode)
	assert.Contains(t, unsupported.Error(), "unsupported file type")
}
