package handlers

import (
	"strconv"

	"belanja/internal/middleware"
	"belanja/internal/models"
	"belanja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication and accounts.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// RegisterProfileRoutes registers the authenticated account routes.
func (h *AuthHandler) RegisterProfileRoutes(router fiber.Router) {
	router.Get("/profile", h.HandleGetProfile)
	router.Put("/profile", h.HandleUpdateProfile)
}

// RegisterAdminRoutes registers the admin user listing.
func (h *AuthHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/users", h.HandleListUsers)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(user); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.authService.RegisterUser(&user); err != nil {
		return errorResponse(c, err, "Could not register user")
	}

	// For security, do not return the password hash
	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	token, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// HandleGetProfile returns the authenticated user's account record.
func (h *AuthHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.authService.GetProfile(middleware.UserID(c))
	if err != nil {
		return errorResponse(c, err, "Could not retrieve profile")
	}
	user.Password = ""
	return c.JSON(user)
}

// UpdateProfileRequest represents the mutable account fields.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

// HandleUpdateProfile updates the authenticated user's account record.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := h.authService.UpdateProfile(middleware.UserID(c), req.FullName, req.Phone, req.ImageURL)
	if err != nil {
		return errorResponse(c, err, "Could not update profile")
	}
	user.Password = ""
	return c.JSON(user)
}

// HandleListUsers returns a page of users for the admin back office.
func (h *AuthHandler) HandleListUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	users, total, err := h.authService.ListUsers(page, limit)
	if err != nil {
		return errorResponse(c, err, "Could not retrieve users")
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
