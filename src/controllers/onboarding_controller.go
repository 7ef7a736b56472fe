package controllers

import (
	"Backend-CorpsConnect/src/services"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

// SaveOnboardingStep godoc
// @Summary      Save one onboarding step
// @Tags         onboarding
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  services.OnboardingStepInput  true  "Step payload"
// @Success      200  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/onboarding/step [put]
func SaveOnboardingStep(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var input services.OnboardingStepInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	progress, err := services.SaveOnboardingStep(userID, input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Step saved", progress)
}

// CompleteOnboarding godoc
// @Summary      Finish onboarding
// @Tags         onboarding
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/onboarding/complete [post]
func CompleteOnboarding(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	progress, err := services.CompleteOnboarding(userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Onboarding completed", progress)
}

// GetOnboardingProgress godoc
// @Summary      Get onboarding progress
// @Tags         onboarding
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/onboarding/progress [get]
func GetOnboardingProgress(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	progress, err := services.GetOnboardingProgress(userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", progress)
}
