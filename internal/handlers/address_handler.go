package handlers

import (
	"belanja/internal/middleware"
	"belanja/internal/models"
	"belanja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AddressHandler handles HTTP requests for the caller's shipping
// addresses. All routes are authenticated.
type AddressHandler struct {
	service  *services.AddressService
	validate *validator.Validate
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(service *services.AddressService) *AddressHandler {
	return &AddressHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the address routes with the Fiber app.
func (h *AddressHandler) RegisterRoutes(router fiber.Router) {
	addressRoutes := router.Group("/addresses")
	addressRoutes.Get("/", h.HandleGetAddresses)
	addressRoutes.Post("/", h.HandleCreateAddress)
	addressRoutes.Put("/:id", h.HandleUpdateAddress)
	addressRoutes.Delete("/:id", h.HandleDeleteAddress)
	addressRoutes.Post("/:id/default", h.HandleSetDefault)
}

// HandleGetAddresses returns the caller's addresses, default first.
func (h *AddressHandler) HandleGetAddresses(c *fiber.Ctx) error {
	addresses, err := h.service.GetAddresses(middleware.UserID(c))
	if err != nil {
		return errorResponse(c, err, "Could not retrieve addresses")
	}
	return c.JSON(addresses)
}

// HandleCreateAddress creates a new address for the caller.
func (h *AddressHandler) HandleCreateAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(address); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.CreateAddress(middleware.UserID(c), &address); err != nil {
		return errorResponse(c, err, "Could not create address")
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// HandleUpdateAddress updates one of the caller's addresses.
func (h *AddressHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	address.ID = c.Params("id")
	if err := h.validate.Struct(address); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.UpdateAddress(middleware.UserID(c), &address); err != nil {
		return errorResponse(c, err, "Could not update address")
	}
	return c.JSON(address)
}

// HandleDeleteAddress deletes one of the caller's addresses.
func (h *AddressHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	if err := h.service.DeleteAddress(middleware.UserID(c), c.Params("id")); err != nil {
		return errorResponse(c, err, "Could not delete address")
	}
	return c.JSON(fiber.Map{
		"message": "Address deleted successfully",
	})
}

// HandleSetDefault marks an address as the caller's default shipping
// address; any previous default loses the flag.
func (h *AddressHandler) HandleSetDefault(c *fiber.Ctx) error {
	if err := h.service.SetDefault(middleware.UserID(c), c.Params("id")); err != nil {
		return errorResponse(c, err, "Could not set default address")
	}
	return c.JSON(fiber.Map{
		"message": "Default address updated",
	})
}
