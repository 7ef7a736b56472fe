package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Backend-CorpsConnect/src/services"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UpdateProfile godoc
// @Summary      Update the authenticated user's profile
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  services.UpdateProfileInput  true  "Profile fields"
// @Success      200  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/users/profile [put]
func UpdateProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	user, err := services.UpdateUserProfile(userID, input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Profile updated", user)
}

// UploadProfilePicture godoc
// @Summary      Upload a profile picture
// @Tags         users
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        picture  formData  file  true  "Image file"
// @Success      200  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/users/profile/picture [post]
func UploadProfilePicture(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	file, err := c.FormFile("picture")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "No picture supplied")
	}
	if file.Size > 2<<20 {
		return utils.HandleError(c, fiber.StatusBadRequest, "Picture must be 2MB or smaller")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return utils.HandleError(c, fiber.StatusBadRequest, "Only PNG, JPEG and WebP images are accepted")
	}

	dir := "public/avatars"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return utils.HandleServiceError(c, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s%s", uuid.NewString(), ext))
	if err := c.SaveFile(file, path); err != nil {
		return utils.HandleServiceError(c, err)
	}

	servedPath := "/" + path
	if err := services.UpdateProfilePicture(userID, servedPath); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Picture uploaded", fiber.Map{"profilePicture": servedPath})
}
