package controller

import (
	"strings"

	"noteful-be/internal/pkg/objectid"
	"noteful-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// created answers 201 with the resource body and its Location.
func created(ctx *fiber.Ctx, id string, body interface{}) error {
	ctx.Location(strings.TrimRight(ctx.Path(), "/") + "/" + id)
	return ctx.Status(fiber.StatusCreated).JSON(body)
}

// pathID returns the :id parameter. A malformed id is rejected before the
// request body is read.
func pathID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if !objectid.IsValid(id) {
		return "", serverutils.NewInvalidIdentifierError("id")
	}
	return id, nil
}
