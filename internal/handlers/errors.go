package handlers

import (
	"errors"
	"os"

	"belanja/internal/repositories"
	"belanja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// errorResponse maps a service error onto an HTTP status and the
// {"message", "error"} body shape. Every handler funnels failures through
// here so nothing escapes as a raw exception.
func errorResponse(c *fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrAddressOwnership),
		errors.Is(err, services.ErrOrderOwnership),
		errors.Is(err, services.ErrReviewOwnership):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrCartValidation),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrNotCancellable),
		errors.Is(err, repositories.ErrInsufficientStock):
		status = fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrAlreadyExists):
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Path()).Msg(message)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// validationErrorResponse renders validator.ValidationErrors as a
// field-keyed error map with a 400 status.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = "Field '" + e.Field() + "' failed on the '" + e.Tag() + "' tag"
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
