package service

import (
	"context"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/dto"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/pkg/logger"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/repository/memory"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/fusion"
)

type IAssetService interface {
	List(ctx context.Context, sessionId string) (*dto.ListAssetsResponse, error)
	Preview(ctx context.Context, sessionId, assetId string) ([]byte, string, error)
	Release(ctx context.Context, sessionId, assetId string) error
	Clear(ctx context.Context, sessionId string) error
}

type assetService struct {
	workspaces *memory.WorkspaceRepository
	log        logger.ILogger
}

func NewAssetService(workspaces *memory.WorkspaceRepository, log logger.ILogger) IAssetService {
	return &assetService{
		workspaces: workspaces,
		log:        log,
	}
}

func (s *assetService) List(ctx context.Context, sessionId string) (*dto.ListAssetsResponse, error) {
	ws := s.workspaces.GetOrCreate(sessionId)

	assets := ws.Registry.List()
	res := &dto.ListAssetsResponse{
		Assets: make([]dto.AssetResponse, 0, len(assets)),
	}
	for _, asset := range assets {
		res.Assets = append(res.Assets, toAssetResponse(asset))
	}
	return res, nil
}

// Preview returns the raw preview bytes for an image asset.
func (s *assetService) Preview(ctx context.Context, sessionId, assetId string) ([]byte, string, error) {
	ws := s.workspaces.GetOrCreate(sessionId)

	asset, err := ws.Registry.Get(assetId)
	if err != nil {
		return nil, "", err
	}
	handle := asset.Preview()
	if handle == nil {
		return nil, "", fusion.ErrNotFound
	}
	data, err := handle.Bytes()
	if err != nil {
		return nil, "", fusion.ErrNotFound
	}
	return data, handle.ContentType(), nil
}

// Release revokes the asset's preview and, if it backed the current image
// selection, clears the selection as well.
func (s *assetService) Release(ctx context.Context, sessionId, assetId string) error {
	ws := s.workspaces.GetOrCreate(sessionId)

	selected, _, _ := ws.Session.Snapshot()
	if selected != nil && selected.ID == assetId {
		ws.Session.ClearSelection()
	}

	if err := ws.Registry.Release(assetId); err != nil {
		return err
	}

	s.log.Info("asset", "Asset released", map[string]interface{}{
		"asset_id": assetId,
	})
	return nil
}

// Clear empties the registry. The registry always ends empty even when an
// individual revoke fails; the failure is logged and reported back.
func (s *assetService) Clear(ctx context.Context, sessionId string) error {
	ws := s.workspaces.GetOrCreate(sessionId)

	ws.Session.ClearSelection()
	if err := ws.Registry.Clear(); err != nil {
		s.log.Warn("asset", "Registry cleared with revoke failures", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

func toAssetResponse(asset *fusion.Asset) dto.AssetResponse {
	res := dto.AssetResponse{
		Id:          asset.ID,
		Name:        asset.Name,
		Size:        asset.Size,
		ContentType: asset.ContentType,
		RemoteUrl:   asset.RemoteURL(),
	}
	if handle := asset.Preview(); handle != nil && !handle.Revoked() {
		res.PreviewUrl = "/api/asset/v1/preview/" + asset.ID
	}
	return res
}
