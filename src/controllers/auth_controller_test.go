package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleLoginIssuesRandomStateCookie(t *testing.T) {
	app := fiber.New()
	app.Get("/api/auth/google", GoogleLogin)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/auth/google", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTemporaryRedirect, resp.StatusCode)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)
	assert.NotEqual(t, "state-token", state)

	var cookieState string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "oauth_state" {
			cookieState = cookie.Value
		}
	}
	assert.Equal(t, state, cookieState, "redirect state and cookie must match")

	// A second login gets its own state.
	resp2, err := app.Test(httptest.NewRequest("GET", "/api/auth/google", nil))
	require.NoError(t, err)
	location2, err := url.Parse(resp2.Header.Get("Location"))
	require.NoError(t, err)
	assert.NotEqual(t, state, location2.Query().Get("state"))
}

func TestGoogleCallbackRejectsStateMismatch(t *testing.T) {
	app := fiber.New()
	app.Get("/api/auth/google/callback", GoogleCallback)

	req := httptest.NewRequest("GET", "/api/auth/google/callback?code=abc&state=forged", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "expected"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGoogleCallbackRejectsMissingState(t *testing.T) {
	app := fiber.New()
	app.Get("/api/auth/google/callback", GoogleCallback)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/auth/google/callback?code=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
