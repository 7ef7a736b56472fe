package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"omitempty,oneof=corps_member employer"`
}

func TestValidationMessages(t *testing.T) {
	err := Validate.Struct(sampleInput{Email: "nope", Password: "short", Role: "boss"})
	require.Error(t, err)

	vErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	msgs := ValidationMessages(vErrs)
	assert.Len(t, msgs, 3)
	for _, msg := range msgs {
		assert.NotEmpty(t, msg)
	}
}

func TestValidPayloadPasses(t *testing.T) {
	err := Validate.Struct(sampleInput{Email: "a@b.com", Password: "longenough", Role: "employer"})
	assert.NoError(t, err)
}
