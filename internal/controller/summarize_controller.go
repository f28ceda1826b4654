package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/dto"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/pkg/serverutils"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/service"
)

type ISummarizeController interface {
	RegisterRoutes(r fiber.Router)
	Summarize(ctx *fiber.Ctx) error
}

type summarizeController struct {
	summarizeService service.ISummarizeService
}

func NewSummarizeController(summarizeService service.ISummarizeService) ISummarizeController {
	return &summarizeController{
		summarizeService: summarizeService,
	}
}

func (c *summarizeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/summarize/v1")
	h.Post("", c.Summarize)
}

func (c *summarizeController) Summarize(ctx *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &serverutils.ValidationError{Message: "invalid request body"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.summarizeService.Summarize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
