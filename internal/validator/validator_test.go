package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

func TestValidate_Success(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:    "taro@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// Ключи ошибок - имена из json-тегов, а не имена полей Go
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestValidate_PasswordRule(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:    "taro@example.com",
		Password: "onlyletters",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "password")
}
