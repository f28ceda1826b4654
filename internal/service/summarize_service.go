package service

import (
	"context"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/dto"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/pkg/logger"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/summarizer"
)

type ISummarizeService interface {
	Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
}

type summarizeService struct {
	gateway *summarizer.Summarizer
	log     logger.ILogger
}

func NewSummarizeService(gateway *summarizer.Summarizer, log logger.ILogger) ISummarizeService {
	return &summarizeService{
		gateway: gateway,
		log:     log,
	}
}

func (s *summarizeService) Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	result, err := s.gateway.Summarize(ctx, req.Text)
	if err != nil {
		s.log.Error("summarize", "Summarization failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return &dto.SummarizeResponse{
		Summary: result.Summary,
		Bullets: result.Bullets,
	}, nil
}
