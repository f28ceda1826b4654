package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/service"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Get("", c.Search)
}

// Search answers {results: [...]}. An empty or absent q yields an empty
// result list, never the full catalog.
func (c *searchController) Search(ctx *fiber.Ctx) error {
	q := ctx.Query("q")

	res, err := c.searchService.Search(ctx.Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
