package service

import (
	"context"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/dto"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/pkg/logger"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/repository/contract"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/matcher"
)

type ISearchService interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

type searchService struct {
	catalog  contract.CatalogRepository
	strategy matcher.Strategy
	log      logger.ILogger
}

func NewSearchService(catalog contract.CatalogRepository, strategy matcher.Strategy, log logger.ILogger) ISearchService {
	return &searchService{
		catalog:  catalog,
		strategy: strategy,
		log:      log,
	}
}

func (s *searchService) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	matches := s.strategy.Match(query, s.catalog.AllItems())

	results := make([]dto.SearchResultItem, 0, len(matches))
	for _, m := range matches {
		results = append(results, dto.SearchResultItem{
			Id:      m.Item.Id,
			Type:    string(m.Item.Modality),
			Title:   m.Item.Title,
			Snippet: m.Item.Snippet,
			Source:  m.Item.SourceLabel,
		})
	}

	s.log.Info("search", "Query matched", map[string]interface{}{
		"query":   query,
		"matches": len(results),
	})

	return &dto.SearchResponse{Results: results}, nil
}
