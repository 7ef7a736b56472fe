package middleware

import (
	"strings"

	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT validates the bearer token and stashes the identity in locals.
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if utils.IsTokenBlacklisted(tokenStr) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token has been invalidated"})
	}

	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)

	return c.Next()
}

// RequirePermission gates a route on the caller's resolved capabilities.
// Must run after AuthJWT.
func RequirePermission(check func(utils.RolePermissions) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if !utils.HasPermission(role, check) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have permission to access this resource"})
		}
		return c.Next()
	}
}
