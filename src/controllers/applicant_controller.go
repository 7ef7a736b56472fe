package controllers

import (
	"Backend-CorpsConnect/src/services/applicants"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

type updateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending under_review shortlisted interview rejected accepted"`
}

// ApplyToJob godoc
// @Summary      Apply to a published job
// @Tags         applications
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  applicants.ApplyInput  true  "Application payload"
// @Success      201  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/applications [post]
func ApplyToJob(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var input applicants.ApplyInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	app, err := applicants.Apply(userID, input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusCreated, "Application submitted", app)
}

// ListMyApplications godoc
// @Summary      List the caller's applications
// @Tags         applications
// @Security     BearerAuth
// @Produce      json
// @Param        status  query  string  false  "Status filter"
// @Param        page    query  int     false  "Page"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  models.APIResponse
// @Router       /api/applications [get]
func ListMyApplications(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	list, err := applicants.ListMyApplications(userID,
		c.Query("status"), c.QueryInt("page"), c.QueryInt("limit"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", list)
}

// ListEmployerApplications godoc
// @Summary      List applications across all of the employer's jobs
// @Tags         applications
// @Security     BearerAuth
// @Produce      json
// @Param        status  query  string  false  "Status filter"
// @Param        page    query  int     false  "Page"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  models.APIResponse
// @Router       /api/applications/employer [get]
func ListEmployerApplications(c *fiber.Ctx) error {
	employerID, _ := c.Locals("userId").(string)

	list, err := applicants.ListEmployerApplications(employerID,
		c.Query("status"), c.QueryInt("page"), c.QueryInt("limit"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", list)
}

// ListJobApplications godoc
// @Summary      List applications for one of the employer's jobs
// @Tags         applications
// @Security     BearerAuth
// @Produce      json
// @Param        jobId   path   string  true   "Job ID"
// @Param        status  query  string  false  "Status filter"
// @Param        page    query  int     false  "Page"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  models.APIResponse
// @Router       /api/applications/job/{jobId} [get]
func ListJobApplications(c *fiber.Ctx) error {
	employerID, _ := c.Locals("userId").(string)

	list, err := applicants.ListJobApplications(employerID, c.Params("jobId"),
		c.Query("status"), c.QueryInt("page"), c.QueryInt("limit"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", list)
}

// GetApplication godoc
// @Summary      Get one application
// @Tags         applications
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  models.APIResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /api/applications/{id} [get]
func GetApplication(c *fiber.Ctx) error {
	callerID, _ := c.Locals("userId").(string)

	app, err := applicants.GetApplication(c.Params("id"), callerID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", app)
}

// UpdateApplicationStatus godoc
// @Summary      Move an application through the review pipeline
// @Tags         applications
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Application ID"
// @Param        body  body  updateApplicationStatusRequest  true  "New status"
// @Success      200  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/applications/{id}/status [put]
func UpdateApplicationStatus(c *fiber.Ctx) error {
	employerID, _ := c.Locals("userId").(string)

	var req updateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.HandleServiceError(c, err)
	}

	app, err := applicants.UpdateApplicationStatus(employerID, c.Params("id"), req.Status)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Application updated", app)
}

// WithdrawApplication godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/applications/{id}/withdraw [post]
func WithdrawApplication(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	app, err := applicants.Withdraw(userID, c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Application withdrawn", app)
}
