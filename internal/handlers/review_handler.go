package handlers

import (
	"belanja/internal/middleware"
	"belanja/internal/models"
	"belanja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the unauthenticated review reads.
func (h *ReviewHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/products/:productId/reviews", h.HandleGetProductReviews)
}

// RegisterRoutes registers the authenticated review mutations.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Put("/:id", h.HandleUpdateReview)
	reviewRoutes.Delete("/:id", h.HandleDeleteReview)
}

// HandleGetProductReviews lists a product's reviews with reviewer names.
func (h *ReviewHandler) HandleGetProductReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetProductReviews(c.Params("productId"))
	if err != nil {
		return errorResponse(c, err, "Could not retrieve reviews")
	}
	// Strip everything but the display name from the reviewer
	for i := range reviews {
		if reviews[i].User != nil {
			reviews[i].User = &models.User{
				ID:       reviews[i].User.ID,
				Username: reviews[i].User.Username,
				FullName: reviews[i].User.FullName,
				ImageURL: reviews[i].User.ImageURL,
			}
		}
	}
	return c.JSON(reviews)
}

// HandleCreateReview creates a review by the caller. One review per user
// per product.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(review); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.CreateReview(middleware.UserID(c), &review); err != nil {
		return errorResponse(c, err, "Could not create review")
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// UpdateReviewRequest represents the request body for a review update.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

// HandleUpdateReview updates the caller's own review.
func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	review, err := h.service.UpdateReview(middleware.UserID(c), c.Params("id"), req.Rating, req.Comment)
	if err != nil {
		return errorResponse(c, err, "Could not update review")
	}
	return c.JSON(review)
}

// HandleDeleteReview deletes the caller's own review.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	if err := h.service.DeleteReview(middleware.UserID(c), c.Params("id")); err != nil {
		return errorResponse(c, err, "Could not delete review")
	}
	return c.JSON(fiber.Map{
		"message": "Review deleted successfully",
	})
}
