package service

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/dto"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/pkg/logger"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/repository/memory"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/blob"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/fusion"
)

const objectPrefix = "medicquery"

type IUploadService interface {
	Upload(ctx context.Context, sessionId string, files []*multipart.FileHeader) (*dto.UploadResponse, error)
}

type uploadService struct {
	workspaces *memory.WorkspaceRepository
	store      blob.Store
	log        logger.ILogger
}

func NewUploadService(workspaces *memory.WorkspaceRepository, store blob.Store, log logger.ILogger) IUploadService {
	return &uploadService{
		workspaces: workspaces,
		store:      store,
		log:        log,
	}
}

// Upload registers each file with the session's asset registry and pushes it
// to the object store. Files are independent: one failed put is reported and
// its siblings still go through.
func (s *uploadService) Upload(ctx context.Context, sessionId string, files []*multipart.FileHeader) (*dto.UploadResponse, error) {
	ws := s.workspaces.GetOrCreate(sessionId)

	res := &dto.UploadResponse{
		Files: []dto.UploadedFile{},
	}

	for _, fh := range files {
		data, err := readFile(fh)
		if err != nil {
			res.Failed = append(res.Failed, dto.UploadFailure{Name: fh.Filename, Error: err.Error()})
			continue
		}

		contentType := fh.Header.Get("Content-Type")
		asset := ws.Registry.Register(fh.Filename, contentType, data)

		objectName := blob.ObjectName(objectPrefix, fh.Filename)
		url, err := s.store.Put(ctx, objectName, data, contentType)
		if err != nil {
			s.log.Error("upload", "Object store put failed", map[string]interface{}{
				"file":  fh.Filename,
				"error": err.Error(),
			})
			res.Failed = append(res.Failed, dto.UploadFailure{Name: fh.Filename, Error: err.Error()})
			continue
		}

		if err := ws.Registry.AttachRemoteURL(asset.ID, url); err != nil {
			// The asset was released while the put was in flight. The
			// stored object exists; the registry stays released.
			if errors.Is(err, fusion.ErrNotFound) {
				s.log.Warn("upload", "Asset released before upload finished", map[string]interface{}{
					"file":     fh.Filename,
					"asset_id": asset.ID,
				})
			} else {
				return nil, err
			}
		}

		res.Files = append(res.Files, dto.UploadedFile{Url: url, Name: fh.Filename})
	}

	return res, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
