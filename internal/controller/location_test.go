package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"noteful-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathID(t *testing.T) {
	var gotErr error
	app := fiber.New()
	app.Put("/items/:id", func(ctx *fiber.Ctx) error {
		id, err := pathID(ctx)
		gotErr = err
		return ctx.SendString(id)
	})

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "111111111111111111111101", false},
		{"upper case", "11111111111111111111AB01", false},
		{"malformed", "badId", true},
		{"too long", "1111111111111111111111010", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr = nil
			req := httptest.NewRequest(http.MethodPut, "/items/"+tt.id, strings.NewReader(`["not an object"]`))
			_, err := app.Test(req, -1)
			require.NoError(t, err)

			if tt.wantErr {
				assert.ErrorIs(t, gotErr, serverutils.ErrInvalidIdentifier)
				assert.EqualError(t, gotErr, "The `id` is not valid")
			} else {
				assert.NoError(t, gotErr)
			}
		})
	}
}
