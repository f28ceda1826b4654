package service

import (
	"context"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/dto"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/pkg/logger"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/repository/memory"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/fusion"
)

type IFusionService interface {
	State(ctx context.Context, sessionId string) (*dto.FusionStateResponse, error)
	SelectImage(ctx context.Context, sessionId string, req *dto.SelectImageRequest) (*dto.FusionStateResponse, error)
	ClearSelection(ctx context.Context, sessionId string) (*dto.FusionStateResponse, error)
	AddAnnotation(ctx context.Context, sessionId string, req *dto.AddAnnotationRequest) (*dto.FusionStateResponse, error)
	SetNotes(ctx context.Context, sessionId string, req *dto.SetNotesRequest) (*dto.FusionStateResponse, error)
}

type fusionService struct {
	workspaces *memory.WorkspaceRepository
	log        logger.ILogger
}

func NewFusionService(workspaces *memory.WorkspaceRepository, log logger.ILogger) IFusionService {
	return &fusionService{
		workspaces: workspaces,
		log:        log,
	}
}

func (s *fusionService) State(ctx context.Context, sessionId string) (*dto.FusionStateResponse, error) {
	ws := s.workspaces.GetOrCreate(sessionId)
	return toStateResponse(ws.Session), nil
}

func (s *fusionService) SelectImage(ctx context.Context, sessionId string, req *dto.SelectImageRequest) (*dto.FusionStateResponse, error) {
	ws := s.workspaces.GetOrCreate(sessionId)

	asset, err := ws.Registry.Get(req.AssetId)
	if err != nil {
		return nil, err
	}
	if err := ws.Session.SelectImage(asset); err != nil {
		return nil, err
	}

	s.log.Info("fusion", "Image selected", map[string]interface{}{
		"asset_id": asset.ID,
	})
	return toStateResponse(ws.Session), nil
}

func (s *fusionService) ClearSelection(ctx context.Context, sessionId string) (*dto.FusionStateResponse, error) {
	ws := s.workspaces.GetOrCreate(sessionId)
	ws.Session.ClearSelection()
	return toStateResponse(ws.Session), nil
}

func (s *fusionService) AddAnnotation(ctx context.Context, sessionId string, req *dto.AddAnnotationRequest) (*dto.FusionStateResponse, error) {
	ws := s.workspaces.GetOrCreate(sessionId)

	point := fusion.Annotation{X: req.X, Y: req.Y}
	if err := ws.Session.AddAnnotation(point); err != nil {
		return nil, err
	}
	return toStateResponse(ws.Session), nil
}

func (s *fusionService) SetNotes(ctx context.Context, sessionId string, req *dto.SetNotesRequest) (*dto.FusionStateResponse, error) {
	ws := s.workspaces.GetOrCreate(sessionId)
	ws.Session.SetNotes(req.Text)
	return toStateResponse(ws.Session), nil
}

func toStateResponse(session *fusion.Session) *dto.FusionStateResponse {
	selected, annotations, notes := session.Snapshot()

	res := &dto.FusionStateResponse{
		Annotations: make([]dto.AnnotationDTO, 0, len(annotations)),
		Notes:       notes,
	}
	if selected != nil {
		res.SelectedImageId = selected.ID
	}
	for _, a := range annotations {
		res.Annotations = append(res.Annotations, dto.AnnotationDTO{X: a.X, Y: a.Y})
	}
	return res
}
