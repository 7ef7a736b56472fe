package controllers

import (
	"Backend-CorpsConnect/src/services/documents"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateDocument godoc
// @Summary      Start a new resume document
// @Tags         documents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  documents.CreateDocumentInput  true  "Document payload"
// @Success      201  {object}  models.APIResponse
// @Router       /api/documents [post]
func CreateDocument(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var input documents.CreateDocumentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	doc, err := documents.CreateDocument(userID, input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusCreated, "Document created", doc)
}

// ListDocuments godoc
// @Summary      List the caller's documents
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/documents [get]
func ListDocuments(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	docs, err := documents.ListDocuments(userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", docs)
}

// ListArchivedDocuments godoc
// @Summary      List documents in the trash
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/documents/trash [get]
func ListArchivedDocuments(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	docs, err := documents.ListArchivedDocuments(userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", docs)
}

// GetDocument godoc
// @Summary      Get one document with its sections
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        documentId  path  string  true  "Document public ID"
// @Success      200  {object}  models.APIResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/documents/{documentId} [get]
func GetDocument(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	detail, err := documents.GetDocument(userID, c.Params("documentId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", detail)
}

// GetPublicDocument godoc
// @Summary      View a shared resume
// @Tags         documents
// @Produce      json
// @Param        documentId  path  string  true  "Document public ID"
// @Success      200  {object}  models.APIResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/documents/public/{documentId} [get]
func GetPublicDocument(c *fiber.Ctx) error {
	detail, err := documents.GetPublicDocument(c.Params("documentId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "OK", detail)
}

// UpdateDocument godoc
// @Summary      Save editor changes to a document
// @Tags         documents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        documentId  path  string  true  "Document public ID"
// @Param        body  body  documents.UpdateDocumentInput  true  "Editor state"
// @Success      200  {object}  models.APIResponse
// @Router       /api/documents/{documentId} [put]
func UpdateDocument(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var input documents.UpdateDocumentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.Validate.Struct(input); err != nil {
		return utils.HandleServiceError(c, err)
	}

	detail, err := documents.UpdateDocument(userID, c.Params("documentId"), input)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Document saved", detail)
}

// ArchiveDocument godoc
// @Summary      Move a document to the trash
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        documentId  path  string  true  "Document public ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/documents/{documentId} [delete]
func ArchiveDocument(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	if err := documents.ArchiveDocument(userID, c.Params("documentId")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Document archived", nil)
}

// RestoreDocument godoc
// @Summary      Restore a document from the trash
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        documentId  path  string  true  "Document public ID"
// @Success      200  {object}  models.APIResponse
// @Router       /api/documents/{documentId}/restore [post]
func RestoreDocument(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	if err := documents.RestoreDocument(userID, c.Params("documentId")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Document restored", nil)
}

// PurgeDocument godoc
// @Summary      Permanently delete an archived document
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        documentId  path  string  true  "Document public ID"
// @Success      200  {object}  models.APIResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/documents/{documentId}/purge [delete]
func PurgeDocument(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	if err := documents.PurgeDocument(userID, c.Params("documentId")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.SendData(c, fiber.StatusOK, "Document deleted", nil)
}
