package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"noteful-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/", handler)
	return app
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid identifier",
			err:         NewInvalidIdentifierError("id"),
			wantStatus:  fiber.StatusBadRequest,
			wantMessage: "The `id` is not valid",
		},
		{
			name:        "validation error",
			err:         NewValidationError("The folder name already exists"),
			wantStatus:  fiber.StatusBadRequest,
			wantMessage: "The folder name already exists",
		},
		{
			name:        "not found",
			err:         ErrNotFound,
			wantStatus:  fiber.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "fiber error",
			err:         fiber.NewError(fiber.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus:  fiber.StatusMethodNotAllowed,
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unexpected error hides details",
			err:         errors.New("pq: connection refused"),
			wantStatus:  fiber.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ErrorBody
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestErrorHandlerMiddleware_RecoversPanics(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error { panic("nil map write") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal Server Error", body.Message)
}
