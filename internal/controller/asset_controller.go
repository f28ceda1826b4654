package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/pkg/serverutils"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/service"
)

type IAssetController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	Release(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type assetController struct {
	assetService service.IAssetService
}

func NewAssetController(assetService service.IAssetService) IAssetController {
	return &assetController{
		assetService: assetService,
	}
}

func (c *assetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/asset/v1")
	h.Get("", c.List)
	h.Get("preview/:id", c.Preview)
	h.Delete(":id", c.Release)
	h.Delete("", c.Clear)
}

func (c *assetController) List(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	res, err := c.assetService.List(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session assets", res))
}

// Preview streams the asset's preview bytes, the server-side counterpart of
// a local object URL.
func (c *assetController) Preview(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)
	assetId := ctx.Params("id")

	data, contentType, err := c.assetService.Preview(ctx.Context(), sessionId, assetId)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Send(data)
}

func (c *assetController) Release(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)
	assetId := ctx.Params("id")

	if err := c.assetService.Release(ctx.Context(), sessionId, assetId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Asset released", nil))
}

func (c *assetController) Clear(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	if err := c.assetService.Clear(ctx.Context(), sessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Registry cleared", nil))
}
