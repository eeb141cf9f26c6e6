package httperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom_KnownErrors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, From(ErrInvalidCredentials).Status)
	assert.Equal(t, http.StatusBadRequest, From(ErrEmailTaken).Status)
	assert.Equal(t, "email_taken", From(ErrEmailTaken).Code)
}

func TestFrom_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), ErrEmailTaken)
	assert.Equal(t, "email_taken", From(wrapped).Code)
}

func TestFrom_UnknownErrorIsInfrastructure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	he := From(cause)

	require.Equal(t, http.StatusInternalServerError, he.Status)
	assert.Equal(t, "internal_error", he.Code)
	assert.NotContains(t, he.Message, "dial tcp", "internal detail must not leak to clients")
	assert.ErrorIs(t, he, cause)
}

func TestValidation(t *testing.T) {
	he := Validation("missing required fields")
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "validation_error", he.Code)
	assert.Equal(t, "missing required fields", he.Error())
}
