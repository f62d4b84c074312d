package validator

import (
	"testing"

	"hospital-dashboard/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_LoginRequiresCredentials(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&dto.LoginRequest{Username: "admin"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"password": "password is required"}, v.FormatValidationErrors(err))

	assert.NoError(t, v.Validate(&dto.LoginRequest{Username: "admin", Password: "x"}))
}

func TestValidate_RegisterRole(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&dto.RegisterRequest{Username: "a", Password: "b", Role: "nurse"})
	require.Error(t, err)
	assert.Equal(t, "role must be one of: admin doctor", v.FormatValidationErrors(err)["role"])

	assert.NoError(t, v.Validate(&dto.RegisterRequest{Username: "a", Password: "b", Role: "doctor"}))
}

func TestValidate_ListQueryBounds(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&dto.ListQuery{Page: 1, Limit: 500})
	require.Error(t, err)
	assert.Contains(t, v.FormatValidationErrors(err), "limit")
}
