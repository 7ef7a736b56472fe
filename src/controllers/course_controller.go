package controllers

import (
	"Backend-CorpsConnect/src/services/courses"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

type generateSessionRequest struct {
	DurationMinutes int `json:"durationMinutes" validate:"required,gte=1,lte=1440"`
}

// CreateCourse godoc
// @Summary      Create a draft course
// @Tags         courses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  courses.CreateCourseInput  true  "Course payload"
// @Success      201  {object}  models.APIResponse
// @Router       /api/courses [post]
func CreateCourse(c *fiber.Ctx) error {
	staffID, _ := c.Locals("userId").(string)

	var input courses.CreateCourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	course, err := courses.CreateCourse(staffID, input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusCreated, "Course created", course)
}

// UpdateCourse godoc
// @Summary      Update a course
// @Tags         courses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Course ID"
// @Param        body  body  courses.UpdateCourseInput  true  "Fields to change"
// @Success      200  {object}  models.APIResponse
// @Router       /api/courses/{id} [put]
func UpdateCourse(c *fiber.Ctx) error {
	staffID, _ := c.Locals("userId").(string)

	var input courses.UpdateCourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	course, err := courses.UpdateCourse(c.Params("id"), staffID, input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Course updated", course)
}

// PublishCourse godoc
// @Summary      Open a course for enrollment
// @Tags         courses
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/courses/{id}/publish [post]
func PublishCourse(c *fiber.Ctx) error {
	staffID, _ := c.Locals("userId").(string)

	course, err := courses.PublishCourse(c.Params("id"), staffID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Course published", course)
}

// ArchiveCourse godoc
// @Summary      Archive a course
// @Tags         courses
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/courses/{id} [delete]
func ArchiveCourse(c *fiber.Ctx) error {
	staffID, _ := c.Locals("userId").(string)

	if err := courses.ArchiveCourse(c.Params("id"), staffID); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Course archived", nil)
}

// GetCourse godoc
// @Summary      Get one course
// @Tags         courses
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  models.APIResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/courses/{id} [get]
func GetCourse(c *fiber.Ctx) error {
	viewerID, _ := c.Locals("userId").(string)

	course, err := courses.GetCourse(c.Params("id"), viewerID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", course)
}

// ListCourses godoc
// @Summary      Browse the published catalog
// @Tags         courses
// @Produce      json
// @Param        category  query  string  false  "Category filter"
// @Param        level     query  string  false  "Level filter"
// @Param        page      query  int     false  "Page"
// @Param        limit     query  int     false  "Page size"
// @Success      200  {object}  models.APIResponse
// @Router       /api/courses [get]
func ListCourses(c *fiber.Ctx) error {
	list, err := courses.ListCourses(c.Query("category"), c.Query("level"),
		c.QueryInt("page"), c.QueryInt("limit"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", list)
}

// ListMyCourses godoc
// @Summary      List the staff account's courses
// @Tags         courses
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/courses/mine [get]
func ListMyCourses(c *fiber.Ctx) error {
	staffID, _ := c.Locals("userId").(string)

	list, err := courses.ListStaffCourses(staffID, c.QueryInt("page"), c.QueryInt("limit"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", list)
}

// EnrollCourse godoc
// @Summary      Enroll in a published course
// @Tags         courses
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  models.APIResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/courses/{id}/enroll [post]
func EnrollCourse(c *fiber.Ctx) error {
	studentID, _ := c.Locals("userId").(string)

	course, err := courses.Enroll(c.Params("id"), studentID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Enrolled", course)
}

// DropCourse godoc
// @Summary      Drop an enrollment
// @Tags         courses
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/courses/{id}/drop [post]
func DropCourse(c *fiber.Ctx) error {
	studentID, _ := c.Locals("userId").(string)

	if err := courses.Drop(c.Params("id"), studentID); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Enrollment dropped", nil)
}

// GetCurrentEnrollment godoc
// @Summary      Get the caller's active enrollment
// @Tags         courses
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/courses/enrollment [get]
func GetCurrentEnrollment(c *fiber.Ctx) error {
	studentID, _ := c.Locals("userId").(string)

	course, err := courses.GetCurrentEnrollment(studentID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", course)
}

// GenerateQrSession godoc
// @Summary      Open a QR attendance session
// @Tags         courses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Course ID"
// @Param        body  body  generateSessionRequest  true  "Session window"
// @Success      201  {object}  models.APIResponse
// @Router       /api/courses/{id}/sessions [post]
func GenerateQrSession(c *fiber.Ctx) error {
	staffID, _ := c.Locals("userId").(string)

	var req generateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.HandleServiceError(c, err)
	}

	result, err := courses.GenerateQrSession(c.Params("id"), staffID, req.DurationMinutes)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusCreated, "Session opened", result)
}

// ScanAttendance godoc
// @Summary      Record attendance from a QR scan
// @Tags         courses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  courses.ScanInput  true  "Scan payload"
// @Success      201  {object}  models.APIResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/courses/attendance/scan [post]
func ScanAttendance(c *fiber.Ctx) error {
	studentID, _ := c.Locals("userId").(string)

	var input courses.ScanInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	attendance, err := courses.ScanAttendance(studentID, input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusCreated, "Attendance recorded", attendance)
}

// GetMyAttendance godoc
// @Summary      Get the caller's attendance for a course
// @Tags         courses
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/courses/{id}/attendance/me [get]
func GetMyAttendance(c *fiber.Ctx) error {
	studentID, _ := c.Locals("userId").(string)

	stats, err := courses.GetStudentAttendance(c.Params("id"), studentID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", stats)
}

// GetCourseAttendance godoc
// @Summary      Per-student attendance for a course
// @Tags         courses
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/courses/{id}/attendance [get]
func GetCourseAttendance(c *fiber.Ctx) error {
	staffID, _ := c.Locals("userId").(string)

	report, err := courses.GetCourseAttendance(c.Params("id"), staffID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", report)
}

// CheckClearance godoc
// @Summary      Check clearance eligibility for a course
// @Tags         courses
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/courses/{id}/clearance [get]
func CheckClearance(c *fiber.Ctx) error {
	studentID, _ := c.Locals("userId").(string)

	result, err := courses.CheckClearance(c.Params("id"), studentID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", result)
}

// GetClearanceCertificate godoc
// @Summary      Generate a clearance certificate PDF
// @Tags         courses
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/courses/{id}/clearance/certificate [post]
func GetClearanceCertificate(c *fiber.Ctx) error {
	studentID, _ := c.Locals("userId").(string)

	path, err := courses.GenerateClearanceCertificate(c.Params("id"), studentID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Certificate generated", fiber.Map{"certificate": path})
}
