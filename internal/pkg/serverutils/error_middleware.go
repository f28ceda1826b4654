package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/blob"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/fusion"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/summarizer"
)

// ErrorHandlerMiddleware converts domain errors bubbling out of handlers
// into the matching HTTP status. A failed operation never takes the session
// down: the error is reported and the request cycle ends there.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := statusFor(err)
		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}

func statusFor(err error) int {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.Is(err, summarizer.ErrEmptyText):
		return fiber.StatusBadRequest
	case errors.Is(err, fusion.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, fusion.ErrAssetNotRenderable):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, fusion.ErrNoImageSelected):
		return fiber.StatusConflict
	case errors.Is(err, summarizer.ErrUpstream), errors.Is(err, blob.ErrUpstream):
		return fiber.StatusBadGateway
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
