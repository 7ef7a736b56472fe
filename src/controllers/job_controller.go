package controllers

import (
	"Backend-CorpsConnect/src/services/jobs"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateJob godoc
// @Summary      Create a draft job posting
// @Tags         jobs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  jobs.CreateJobInput  true  "Job payload"
// @Success      201  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/jobs [post]
func CreateJob(c *fiber.Ctx) error {
	employerID, _ := c.Locals("userId").(string)

	var input jobs.CreateJobInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	job, err := jobs.CreateJob(employerID, input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusCreated, "Job created", job)
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Tags         jobs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Job ID"
// @Param        body  body  jobs.UpdateJobInput  true  "Fields to change"
// @Success      200  {object}  models.APIResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /api/jobs/{id} [put]
func UpdateJob(c *fiber.Ctx) error {
	employerID, _ := c.Locals("userId").(string)

	var input jobs.UpdateJobInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	job, err := jobs.UpdateJob(c.Params("id"), employerID, input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Job updated", job)
}

// PublishJob godoc
// @Summary      Publish a job posting
// @Tags         jobs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/jobs/{id}/publish [post]
func PublishJob(c *fiber.Ctx) error {
	employerID, _ := c.Locals("userId").(string)

	job, err := jobs.PublishJob(c.Params("id"), employerID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Job published", job)
}

// CloseJob godoc
// @Summary      Close a job posting
// @Tags         jobs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/jobs/{id}/close [post]
func CloseJob(c *fiber.Ctx) error {
	employerID, _ := c.Locals("userId").(string)

	job, err := jobs.CloseJob(c.Params("id"), employerID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Job closed", job)
}

// DeleteJob godoc
// @Summary      Archive a job posting
// @Tags         jobs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/jobs/{id} [delete]
func DeleteJob(c *fiber.Ctx) error {
	employerID, _ := c.Locals("userId").(string)

	if err := jobs.DeleteJob(c.Params("id"), employerID); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Job archived", nil)
}

// GetJob godoc
// @Summary      Get one job posting
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  models.APIResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/jobs/{id} [get]
func GetJob(c *fiber.Ctx) error {
	viewerID, _ := c.Locals("userId").(string)

	job, err := jobs.GetJob(c.Params("id"), viewerID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", job)
}

// ListJobs godoc
// @Summary      Browse published jobs
// @Tags         jobs
// @Produce      json
// @Param        search           query  string  false  "Title search"
// @Param        jobType          query  string  false  "Job type"
// @Param        experienceLevel  query  string  false  "Experience level"
// @Param        workLocation     query  string  false  "Work location"
// @Param        state            query  string  false  "Hiring state"
// @Param        page             query  int     false  "Page"
// @Param        limit            query  int     false  "Page size"
// @Success      200  {object}  models.APIResponse
// @Router       /api/jobs [get]
func ListJobs(c *fiber.Ctx) error {
	var q jobs.ListJobsQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	list, err := jobs.ListPublicJobs(q)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", list)
}

// ListMyJobs godoc
// @Summary      List the employer's own postings
// @Tags         jobs
// @Security     BearerAuth
// @Produce      json
// @Param        status  query  string  false  "Status filter"
// @Param        page    query  int     false  "Page"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  models.APIResponse
// @Router       /api/jobs/mine [get]
func ListMyJobs(c *fiber.Ctx) error {
	employerID, _ := c.Locals("userId").(string)

	var q jobs.ListJobsQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	list, err := jobs.ListEmployerJobs(employerID, q)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", list)
}

// GetEmployerAnalysis godoc
// @Summary      Posting and pipeline analytics for the employer
// @Tags         jobs
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/jobs/analysis [get]
func GetEmployerAnalysis(c *fiber.Ctx) error {
	employerID, _ := c.Locals("userId").(string)

	analysis, err := jobs.GetEmployerAnalysis(employerID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", analysis)
}
