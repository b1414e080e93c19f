package handlers

import (
	"strconv"

	"belanja/internal/models"
	"belanja/internal/repositories"
	"belanja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminOrderHandler handles the admin back-office order routes.
type AdminOrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewAdminOrderHandler creates a new AdminOrderHandler.
func NewAdminOrderHandler(service *services.OrderService) *AdminOrderHandler {
	return &AdminOrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin order routes with the Fiber app.
func (h *AdminOrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateStatus)
	orderRoutes.Patch("/:id/payment-status", h.HandleUpdatePaymentStatus)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// HandleListOrders returns a filtered, paginated order page. Free-text
// search matches order number and customer name/email.
func (h *AdminOrderHandler) HandleListOrders(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	filter := repositories.OrderFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		Search:        c.Query("search"),
		Page:          page,
		Limit:         limit,
	}

	orders, total, err := h.service.List(filter)
	if err != nil {
		return errorResponse(c, err, "Could not retrieve orders")
	}
	return c.JSON(fiber.Map{
		"orders": orders,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// HandleGetOrder returns one order with all associations preloaded.
func (h *AdminOrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateStatus sets the order's fulfillment status. Moving to
// delivered records the actual delivery date.
func (h *AdminOrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	order, err := h.service.UpdateStatus(c.Params("id"), models.OrderStatus(req.Status))
	if err != nil {
		return errorResponse(c, err, "Could not update order status")
	}
	return c.JSON(order)
}

// UpdatePaymentStatusRequest represents the request body for a payment
// status change, with optional gateway references.
type UpdatePaymentStatusRequest struct {
	PaymentStatus    string  `json:"payment_status" validate:"required"`
	TransactionID    *string `json:"transaction_id,omitempty"`
	PaymentGatewayID *string `json:"payment_gateway_id,omitempty"`
}

// HandleUpdatePaymentStatus sets the order's payment status. Marking a
// pending order as paid auto-confirms it.
func (h *AdminOrderHandler) HandleUpdatePaymentStatus(c *fiber.Ctx) error {
	var req UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	order, err := h.service.UpdatePaymentStatus(
		c.Params("id"),
		models.PaymentStatus(req.PaymentStatus),
		req.TransactionID,
		req.PaymentGatewayID,
	)
	if err != nil {
		return errorResponse(c, err, "Could not update payment status")
	}
	return c.JSON(order)
}

// HandleDeleteOrder removes an order together with its items.
func (h *AdminOrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return errorResponse(c, err, "Could not delete order")
	}
	return c.JSON(fiber.Map{
		"message": "Order deleted successfully",
	})
}
