package controllers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"Backend-CorpsConnect/src/services"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// RegisterUser godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  services.RegisterInput  true  "Registration payload"
// @Success      201  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/auth/register [post]
func RegisterUser(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	user, err := services.RegisterUser(input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return utils.SendData(c, fiber.StatusCreated, "Account created", authResponse{Token: token, User: user})
}

// LoginUser godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  models.APIResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      429  {object}  models.ErrorResponse
// @Router       /api/auth/login [post]
func LoginUser(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.HandleServiceError(c, err)
	}

	if utils.IsRateLimited(req.Email) {
		remaining := utils.GetRemainingCooldownTime(req.Email)
		return utils.HandleError(c, fiber.StatusTooManyRequests,
			fmt.Sprintf("Too many login attempts. Try again in %d minutes and %d seconds.",
				int(remaining.Minutes()), int(remaining.Seconds())%60))
	}

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		utils.LogLoginAttempt(req.Email, false)
		return utils.HandleServiceError(c, err)
	}
	utils.LogLoginAttempt(req.Email, true)

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	return utils.SendData(c, fiber.StatusOK, "Logged in", authResponse{Token: token, User: user})
}

// oauthStateCookie holds the anti-forgery state between the redirect
// to Google and the callback.
const oauthStateCookie = "oauth_state"

// GoogleLogin godoc
// @Summary      Start the Google OAuth flow
// @Tags         auth
// @Success      307
// @Router       /api/auth/google [get]
func GoogleLogin(c *fiber.Ctx) error {
	state := utils.GenerateRandomString(32)
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		MaxAge:   600,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	config := services.GetGoogleOAuthConfig()
	url := config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	return c.Redirect(url, fiber.StatusTemporaryRedirect)
}

// GoogleCallback godoc
// @Summary      Complete the Google OAuth flow
// @Tags         auth
// @Produce      json
// @Param        code   query  string  true  "Authorization code"
// @Param        state  query  string  true  "Anti-forgery state"
// @Success      200  {object}  models.APIResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/auth/google/callback [get]
func GoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookie) {
		return utils.HandleError(c, fiber.StatusUnauthorized, "OAuth state mismatch")
	}
	c.ClearCookie(oauthStateCookie)

	code := c.Query("code")
	if code == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing authorization code")
	}

	user, err := services.ProcessGoogleLogin(code)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Google login failed")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		return c.Redirect(frontend+"/auth/callback?token="+token, fiber.StatusTemporaryRedirect)
	}
	return utils.SendData(c, fiber.StatusOK, "Logged in", authResponse{Token: token, User: user})
}

// Logout godoc
// @Summary      Invalidate the current token
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/auth/logout [post]
func Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "No token supplied")
	}

	claims, err := utils.ParseJWT(token)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err := utils.BlacklistToken(token, ttl); err != nil {
			return utils.HandleError(c, fiber.StatusInternalServerError, "Logout failed")
		}
	}
	return utils.SendData(c, fiber.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Get the authenticated account
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/auth/me [get]
func Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	user, err := services.GetUserByID(userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", user)
}
