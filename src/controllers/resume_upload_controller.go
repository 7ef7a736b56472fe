package controllers

import (
	"Backend-CorpsConnect/src/services/uploads"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadResume godoc
// @Summary      Upload a resume file
// @Tags         resume-uploads
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "PDF or Word document"
// @Success      201  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/resume-uploads [post]
func UploadResume(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	file, err := c.FormFile("resume")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "No resume supplied")
	}

	upload, err := uploads.SaveResume(userID, file)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusCreated, "Resume uploaded", upload)
}

// ListResumeUploads godoc
// @Summary      List the caller's uploaded resumes
// @Tags         resume-uploads
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/resume-uploads [get]
func ListResumeUploads(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	list, err := uploads.ListResumes(userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", list)
}

// GetResumeUpload godoc
// @Summary      Get one upload's metadata
// @Tags         resume-uploads
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Upload ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/resume-uploads/{id} [get]
func GetResumeUpload(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	upload, err := uploads.GetResume(c.Params("id"), userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", upload)
}

// DownloadResume godoc
// @Summary      Download an uploaded resume
// @Tags         resume-uploads
// @Security     BearerAuth
// @Produce      application/octet-stream
// @Param        id  path  string  true  "Upload ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/resume-uploads/{id}/download [get]
func DownloadResume(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	path, name, err := uploads.ResumeFile(c.Params("id"), userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Download(path, name)
}

// DeleteResumeUpload godoc
// @Summary      Delete an uploaded resume
// @Tags         resume-uploads
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Upload ID"
// @Success      200  {object}  models.APIResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/resume-uploads/{id} [delete]
func DeleteResumeUpload(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	if err := uploads.DeleteResume(c.Params("id"), userID); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Resume deleted", nil)
}
