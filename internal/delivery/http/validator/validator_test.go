package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"}))

	err := v.Validate(&signupRequest{Email: "not-an-email", Password: "abc"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "name is required; email must be a valid email; password must be at least 6", appErr.Details())
}
