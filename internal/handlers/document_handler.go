package handlers

import (
	"belanja/internal/models"
	"belanja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles the admin back-office documents and notes.
type DocumentHandler struct {
	service  *services.DocumentService
	validate *validator.Validate
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(service *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the document and note routes under the admin
// group.
func (h *DocumentHandler) RegisterRoutes(router fiber.Router) {
	documents := router.Group("/documents")
	documents.Get("/", h.HandleGetDocuments)
	documents.Get("/:id", h.HandleGetDocumentByID)
	documents.Post("/", h.HandleCreateDocument)
	documents.Put("/:id", h.HandleUpdateDocument)
	documents.Delete("/:id", h.HandleDeleteDocument)

	notes := router.Group("/notes")
	notes.Get("/", h.HandleGetNotes)
	notes.Get("/:id", h.HandleGetNoteByID)
	notes.Post("/", h.HandleCreateNote)
	notes.Put("/:id", h.HandleUpdateNote)
	notes.Delete("/:id", h.HandleDeleteNote)
}

func (h *DocumentHandler) HandleGetDocuments(c *fiber.Ctx) error {
	documents, err := h.service.GetDocuments()
	if err != nil {
		return errorResponse(c, err, "Could not retrieve documents")
	}
	return c.JSON(documents)
}

func (h *DocumentHandler) HandleGetDocumentByID(c *fiber.Ctx) error {
	document, err := h.service.GetDocumentByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err, "Could not retrieve document")
	}
	return c.JSON(document)
}

func (h *DocumentHandler) HandleCreateDocument(c *fiber.Ctx) error {
	var document models.Document
	if err := c.BodyParser(&document); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(document); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateDocument(&document); err != nil {
		return errorResponse(c, err, "Could not create document")
	}
	return c.Status(fiber.StatusCreated).JSON(document)
}

func (h *DocumentHandler) HandleUpdateDocument(c *fiber.Ctx) error {
	var document models.Document
	if err := c.BodyParser(&document); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	document.ID = c.Params("id")
	if err := h.validate.Struct(document); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateDocument(&document); err != nil {
		return errorResponse(c, err, "Could not update document")
	}
	return c.JSON(document)
}

func (h *DocumentHandler) HandleDeleteDocument(c *fiber.Ctx) error {
	if err := h.service.DeleteDocument(c.Params("id")); err != nil {
		return errorResponse(c, err, "Could not delete document")
	}
	return c.JSON(fiber.Map{"message": "Document deleted successfully"})
}

func (h *DocumentHandler) HandleGetNotes(c *fiber.Ctx) error {
	notes, err := h.service.GetNotes()
	if err != nil {
		return errorResponse(c, err, "Could not retrieve notes")
	}
	return c.JSON(notes)
}

func (h *DocumentHandler) HandleGetNoteByID(c *fiber.Ctx) error {
	note, err := h.service.GetNoteByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err, "Could not retrieve note")
	}
	return c.JSON(note)
}

func (h *DocumentHandler) HandleCreateNote(c *fiber.Ctx) error {
	var note models.Note
	if err := c.BodyParser(&note); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(note); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.CreateNote(&note); err != nil {
		return errorResponse(c, err, "Could not create note")
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (h *DocumentHandler) HandleUpdateNote(c *fiber.Ctx) error {
	var note models.Note
	if err := c.BodyParser(&note); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	note.ID = c.Params("id")
	if err := h.validate.Struct(note); err != nil {
		return validationErrorResponse(c, err)
	}
	if err := h.service.UpdateNote(&note); err != nil {
		return errorResponse(c, err, "Could not update note")
	}
	return c.JSON(note)
}

func (h *DocumentHandler) HandleDeleteNote(c *fiber.Ctx) error {
	if err := h.service.DeleteNote(c.Params("id")); err != nil {
		return errorResponse(c, err, "Could not delete note")
	}
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}
