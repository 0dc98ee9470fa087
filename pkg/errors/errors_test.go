package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("create subject: %w", ErrSubjectExists)

	got := FromError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, "Subject name already exists.", got.Message)
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("connection reset")

	got := FromError(cause)
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.ErrorIs(t, got, cause)
	assert.Nil(t, FromError(nil))
}

func TestCloneMatchesTemplateByCode(t *testing.T) {
	clone := Clone(ErrUsernameUnknown, "Username does not exist")

	assert.Equal(t, "Username does not exist", clone.Message)
	assert.Equal(t, "Username does not exist.", ErrUsernameUnknown.Message)
	assert.ErrorIs(t, clone, ErrUsernameUnknown)
	assert.NotErrorIs(t, clone, ErrSubjectNotFound)
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("timeout")
	err := Internal(cause, "failed to load user")

	assert.Equal(t, "failed to load user: timeout", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}
