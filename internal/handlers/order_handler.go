package handlers

import (
	"errors"

	"belanja/internal/middleware"
	"belanja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles the customer-facing order routes. All routes are
// authenticated and scoped to the token's user.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCheckout)
	orderRoutes.Post("/:id/cancel", h.HandleCancelOrder)
}

// HandleGetOrders retrieves the caller's orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrdersByUser(middleware.UserID(c))
	if err != nil {
		return errorResponse(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves one of the caller's orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderForUser(middleware.UserID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// HandleCheckout turns the caller's cart into an order. On validation
// failure the per-item reasons are returned so the UI can re-prompt.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	summary, validations, err := h.service.Checkout(c.Context(), middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, services.ErrCartValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order creation failed: cart validation failed",
				"items":   validations,
			})
		}
		return errorResponse(c, err, "Could not create order")
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

// HandleCancelOrder cancels one of the caller's orders while it is still
// pending.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	order, err := h.service.CancelOrder(middleware.UserID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err, "Could not cancel order")
	}
	return c.JSON(fiber.Map{
		"message": "Order cancelled",
		"order":   order,
	})
}
