package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/dto"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/pkg/serverutils"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/service"
)

type IFusionController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	SelectImage(ctx *fiber.Ctx) error
	ClearSelection(ctx *fiber.Ctx) error
	AddAnnotation(ctx *fiber.Ctx) error
	SetNotes(ctx *fiber.Ctx) error
}

type fusionController struct {
	fusionService service.IFusionService
}

func NewFusionController(fusionService service.IFusionService) IFusionController {
	return &fusionController{
		fusionService: fusionService,
	}
}

func (c *fusionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/fusion/v1")
	h.Get("", c.State)
	h.Post("select", c.SelectImage)
	h.Post("clear", c.ClearSelection)
	h.Post("annotations", c.AddAnnotation)
	h.Put("notes", c.SetNotes)
}

func (c *fusionController) State(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	res, err := c.fusionService.State(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Fusion state", res))
}

func (c *fusionController) SelectImage(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	var req dto.SelectImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &serverutils.ValidationError{Message: "invalid request body"}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.fusionService.SelectImage(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Image selected", res))
}

func (c *fusionController) ClearSelection(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	res, err := c.fusionService.ClearSelection(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Selection cleared", res))
}

func (c *fusionController) AddAnnotation(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	var req dto.AddAnnotationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &serverutils.ValidationError{Message: "invalid request body"}
	}

	res, err := c.fusionService.AddAnnotation(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Annotation added", res))
}

func (c *fusionController) SetNotes(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	var req dto.SetNotesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &serverutils.ValidationError{Message: "invalid request body"}
	}

	res, err := c.fusionService.SetNotes(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Notes updated", res))
}
