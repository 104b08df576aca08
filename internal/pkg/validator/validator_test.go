package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBody struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidate_Valid(t *testing.T) {
	assert.Nil(t, Validate(loginBody{Email: "anna@example.com", Password: "correct horse"}))
}

func TestValidate_FieldFailures(t *testing.T) {
	details := Validate(loginBody{Email: "not-an-email", Password: "short"})
	require.NotNil(t, details)
	assert.Equal(t, "email", details["Email"])
	assert.Equal(t, "min", details["Password"])
}
