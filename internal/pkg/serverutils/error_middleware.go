package serverutils

import (
	"errors"
	"fmt"
	"runtime/debug"

	"noteful-be/internal/constant"
	"noteful-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("HTTP", "panic recovered", map[string]interface{}{
					"panic":  fmt.Sprintf("%v", r),
					"stack":  string(debug.Stack()),
					"method": c.Method(),
					"path":   c.Path(),
				})
				err = c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(
					fiber.StatusInternalServerError, constant.InternalServerErrorMessage,
				))
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}
		return WriteError(c, log, err)
	}
}

// WriteError maps err to a status code and writes the JSON error body.
func WriteError(c *fiber.Ctx, log logger.ILogger, err error) error {
	var idErr *InvalidIdentifierError
	if errors.As(err, &idErr) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, idErr.Error()))
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, ve.Message))
	}

	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, constant.NotFoundMessage))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	log.Error("HTTP", "unhandled error", map[string]interface{}{
		"error":  err,
		"method": c.Method(),
		"path":   c.Path(),
	})
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(
		fiber.StatusInternalServerError, constant.InternalServerErrorMessage,
	))
}
