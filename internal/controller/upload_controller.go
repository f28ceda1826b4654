package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/pkg/serverutils"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/service"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	uploadService service.IUploadService
}

func NewUploadController(uploadService service.IUploadService) IUploadController {
	return &uploadController{
		uploadService: uploadService,
	}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload/v1")
	h.Post("", c.Upload)
}

// Upload accepts multipart form files under "files" and answers
// {files: [{url, name}]}. One failed file never aborts its siblings.
func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	form, err := ctx.MultipartForm()
	if err != nil {
		return &serverutils.ValidationError{Message: "multipart form is required"}
	}
	files := form.File["files"]
	if len(files) == 0 {
		return &serverutils.ValidationError{Message: "at least one file is required"}
	}

	res, err := c.uploadService.Upload(ctx.Context(), sessionId, files)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
