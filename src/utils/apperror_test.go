package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorConstructors(t *testing.T) {
	cases := []struct {
		err  *AppError
		code int
	}{
		{BadRequest("bad input"), fiber.StatusBadRequest},
		{Unauthorized("who are you"), fiber.StatusUnauthorized},
		{Forbidden("not yours"), fiber.StatusForbidden},
		{NotFound("missing"), fiber.StatusNotFound},
		{Conflict("already there"), fiber.StatusConflict},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.NotEmpty(t, tc.err.Error())
	}
}

func TestAppErrorFormatting(t *testing.T) {
	err := NotFound("user %s not found", "abc")
	assert.Equal(t, "user abc not found", err.Message)
}

func TestAsAppErrorUnwraps(t *testing.T) {
	inner := Conflict("duplicate")
	wrapped := fmt.Errorf("saving: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, appErr.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}
