package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/config"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/controller"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/pkg/logger"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/repository/memory"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/service"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/blob"
	blobminio "github.com/sharan022005/medic-query-knowledge-assistant/pkg/blob/minio"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/llm/factory"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/matcher"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/summarizer"
)

type Container struct {
	// Controllers
	SearchController    controller.ISearchController
	SummarizeController controller.ISummarizeController
	UploadController    controller.IUploadController
	AssetController     controller.IAssetController
	FusionController    controller.IFusionController

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Stores
	catalog := memory.NewSeededCatalogRepository()
	workspaces := memory.NewWorkspaceRepository(time.Duration(cfg.App.SessionTTLMinutes) * time.Minute)

	blobStore, err := newBlobStore(cfg)
	if err != nil {
		return nil, err
	}

	// 3. Gateways
	llmProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		return nil, fmt.Errorf("init LLM provider: %w", err)
	}
	log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	gateway := summarizer.New(llmProvider)

	// 4. Services
	searchService := service.NewSearchService(catalog, matcher.NewSubstring(), sysLogger)
	summarizeService := service.NewSummarizeService(gateway, sysLogger)
	uploadService := service.NewUploadService(workspaces, blobStore, sysLogger)
	assetService := service.NewAssetService(workspaces, sysLogger)
	fusionService := service.NewFusionService(workspaces, sysLogger)

	// 5. Controllers
	return &Container{
		SearchController:    controller.NewSearchController(searchService),
		SummarizeController: controller.NewSummarizeController(summarizeService),
		UploadController:    controller.NewUploadController(uploadService),
		AssetController:     controller.NewAssetController(assetService),
		FusionController:    controller.NewFusionController(fusionService),
		Logger:              sysLogger,
	}, nil
}

func newBlobStore(cfg *config.Config) (blob.Store, error) {
	switch cfg.Blob.Provider {
	case "minio":
		store, err := blobminio.Connect(
			context.Background(),
			cfg.Blob.MinioEndpoint,
			cfg.Blob.MinioAccessKey,
			cfg.Blob.MinioSecretKey,
			cfg.Blob.MinioBucket,
			cfg.Blob.MinioUseSSL,
		)
		if err != nil {
			return nil, fmt.Errorf("init object storage: %w", err)
		}
		log.Printf("[INFO] Using blob store: MINIO (%s/%s)", cfg.Blob.MinioEndpoint, cfg.Blob.MinioBucket)
		return store, nil
	case "memory":
		return blob.NewMemoryStore(), nil
	default:
		log.Printf("[INFO] Using blob store: LOCAL (%s)", cfg.Blob.LocalDir)
		return blob.NewLocalStore(cfg.Blob.LocalDir, cfg.App.BaseURL), nil
	}
}
