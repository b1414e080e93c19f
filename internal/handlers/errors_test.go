package handlers

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"belanja/internal/repositories"
	"belanja/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The status mapping keys off wrapped sentinel errors, so rewording an
// error message never changes the HTTP status.
func TestErrorResponse_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"wrapped not found", fmt.Errorf("product with ID p1 %w", repositories.ErrNotFound), fiber.StatusNotFound},
		{"wrapped conflict", fmt.Errorf("%w: username 'budi' already taken", services.ErrAlreadyExists), fiber.StatusConflict},
		{"review ownership", fmt.Errorf("%w: review r1", services.ErrReviewOwnership), fiber.StatusForbidden},
		{"address ownership", fmt.Errorf("%w: address a1", services.ErrAddressOwnership), fiber.StatusForbidden},
		{"cart validation", fmt.Errorf("%w: cart is empty", services.ErrCartValidation), fiber.StatusBadRequest},
		{"insufficient stock", fmt.Errorf("%w: product p1", repositories.ErrInsufficientStock), fiber.StatusBadRequest},
		{"unclassified", fmt.Errorf("connection refused"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return errorResponse(c, tt.err, "request failed")
			})
			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
