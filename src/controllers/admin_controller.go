package controllers

import (
	"Backend-CorpsConnect/src/services/admins"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

type updateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING ACCEPTED REJECTED SUSPENDED"`
}

// AdminListUsers godoc
// @Summary      List platform users
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        role    query  string  false  "Role filter"
// @Param        status  query  string  false  "Vetting status filter"
// @Param        search  query  string  false  "Name or email search"
// @Param        page    query  int     false  "Page"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  models.APIResponse
// @Router       /api/admin/users [get]
func AdminListUsers(c *fiber.Ctx) error {
	var q admins.ListUsersQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := utils.Validate.Struct(q); err != nil {
		return utils.HandleServiceError(c, err)
	}

	list, err := admins.ListUsers(q)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", list)
}

// AdminUpdateUserStatus godoc
// @Summary      Set a user's vetting status
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "User ID"
// @Param        body  body  updateUserStatusRequest  true  "New status"
// @Success      200  {object}  models.APIResponse
// @Router       /api/admin/users/{id}/status [put]
func AdminUpdateUserStatus(c *fiber.Ctx) error {
	var req updateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.HandleServiceError(c, err)
	}

	user, err := admins.UpdateUserStatus(c.Params("id"), req.Status)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "User updated", user)
}

// AdminListApplications godoc
// @Summary      List all applications
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        status  query  string  false  "Status filter"
// @Param        page    query  int     false  "Page"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  models.APIResponse
// @Router       /api/admin/applications [get]
func AdminListApplications(c *fiber.Ctx) error {
	var q admins.ListApplicationsQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	list, err := admins.ListApplications(q)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", list)
}

// AdminDashboard godoc
// @Summary      Headline platform statistics
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/admin/dashboard [get]
func AdminDashboard(c *fiber.Ctx) error {
	stats, err := admins.GetDashboardStats()
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", stats)
}

// AdminRecentActivity godoc
// @Summary      Recent registrations and applications
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/admin/activity [get]
func AdminRecentActivity(c *fiber.Ctx) error {
	items, err := admins.GetRecentActivity()
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", items)
}

// AdminTrends godoc
// @Summary      Signup and application trends
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        period  query  string  true  "day, week or month"
// @Success      200  {object}  models.APIResponse
// @Router       /api/admin/trends [get]
func AdminTrends(c *fiber.Ctx) error {
	period := c.Query("period", "week")

	trends, err := admins.GetTrends(period)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", trends)
}
