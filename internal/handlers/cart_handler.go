package handlers

import (
	"errors"

	"belanja/internal/middleware"
	"belanja/internal/models"
	"belanja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart. All routes are
// authenticated; the cart is keyed by the token's user ID.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/validate", h.HandleValidateCart)
}

// HandleGetCart returns the user's cart.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(c.Context(), middleware.UserID(c))
	if err != nil {
		return errorResponse(c, err, "Could not retrieve cart")
	}
	return c.JSON(cart)
}

// AddItemRequest represents the request body for adding a cart item.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// HandleAddItem adds a product to the cart, merging quantities when the
// product is already present.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	cart, err := h.service.AddItem(c.Context(), middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		return errorResponse(c, err, "Could not add item to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// UpdateItemRequest represents the request body for a quantity change.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// HandleUpdateItem sets the quantity of a cart line; zero removes it.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	cart, err := h.service.UpdateItemQuantity(c.Context(), middleware.UserID(c), c.Params("productId"), req.Quantity)
	if err != nil {
		return errorResponse(c, err, "Could not update cart item")
	}
	return c.JSON(cart)
}

// HandleRemoveItem drops a product from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cart, err := h.service.RemoveItem(c.Context(), middleware.UserID(c), c.Params("productId"))
	if err != nil {
		return errorResponse(c, err, "Could not remove cart item")
	}
	return c.JSON(cart)
}

// HandleClearCart deletes the user's cart entry.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context(), middleware.UserID(c)); err != nil {
		return errorResponse(c, err, "Could not clear cart")
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}

// ValidateCartRequest carries the client's view of the cart for
// validation against live product data.
type ValidateCartRequest struct {
	Items []models.CartItem `json:"items" validate:"required,min=1,dive"`
}

// HandleValidateCart checks each submitted item against the live product
// record and returns per-item validity plus aggregate totals. Any invalid
// item fails the whole batch.
func (h *CartHandler) HandleValidateCart(c *fiber.Ctx) error {
	var req ValidateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	results, totals, err := h.service.Validate(c.Context(), req.Items)
	if err != nil {
		if errors.Is(err, services.ErrCartValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cart validation failed",
				"valid":   false,
				"items":   results,
			})
		}
		return errorResponse(c, err, "Could not validate cart")
	}
	return c.JSON(fiber.Map{
		"valid":  true,
		"items":  results,
		"totals": totals,
	})
}
