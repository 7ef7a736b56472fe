package utils

import (
	"errors"
	"os"
	"strings"

	"Backend-CorpsConnect/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleError writes the standard failure envelope.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.APIResponse{
		Success: false,
		Message: message,
	})
}

// HandleServiceError maps service-layer failures onto HTTP statuses:
// AppError carries its own status, validator errors become 400 with field
// messages, Mongo duplicate keys become 409, everything else is a 500 with
// the detail hidden outside development mode.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if appErr, ok := AsAppError(err); ok {
		return HandleError(c, appErr.Code, appErr.Message)
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: "Validation failed",
			Error:   strings.Join(ValidationMessages(vErrs), "; "),
		})
	}

	if mongo.IsDuplicateKeyError(err) {
		return HandleError(c, fiber.StatusConflict, "Duplicate value for a unique field")
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return HandleError(c, fiber.StatusNotFound, "Resource not found")
	}

	resp := models.APIResponse{Success: false, Message: "Internal server error"}
	if os.Getenv("APP_ENV") == "development" {
		resp.Error = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}

// SendData writes the standard success envelope.
func SendData(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}
