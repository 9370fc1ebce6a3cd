// Package bootstrap wires configuration, storage, the LLM client and the
// HTTP handlers into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/library"
	"careerpath-backend/internal/llm"
	"careerpath-backend/internal/llm/openai"
	"careerpath-backend/internal/plans"
	"careerpath-backend/internal/services/health"
	"careerpath-backend/internal/shared/config"
	"careerpath-backend/internal/shared/server"
	"careerpath-backend/internal/shared/storage/object"
	locals "careerpath-backend/internal/shared/storage/object/local"
	"careerpath-backend/internal/shared/storage/object/s3"
	"careerpath-backend/internal/shared/telemetry"
	"careerpath-backend/internal/uploads"
)

// App holds the assembled application.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	Store   object.ObjectStore
	Library *library.Library
	LLM     llm.Client
}

// Build assembles the application from configuration.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	lib := library.Load(cfg.ContentLibraryPath)

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, configured := buildLLM(cfg)

	careersSvc := careers.NewService(client, cfg.LLMModel)
	plansSvc := plans.NewService(client, cfg.LLMModel, cfg.SkillsModel, lib)
	healthSvc := health.NewService(configured)

	router := server.NewRouter(server.RouterDeps{
		Config:         cfg,
		HealthSvc:      healthSvc,
		CareersHandler: careers.NewHandler(careersSvc),
		PlansHandler:   plans.NewHandler(plansSvc, store),
		UploadsHandler: uploads.NewHandler(store),
	})

	return &App{
		Config:  cfg,
		Router:  router,
		Store:   store,
		Library: lib,
		LLM:     client,
	}, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("init s3 store: %w", err)
		}
		return store, nil
	default:
		return locals.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, bool) {
	if cfg.LLMProvider != "openai" {
		telemetry.Warn("llm.disabled", map[string]any{"provider": cfg.LLMProvider})
		return llm.Disabled{}, false
	}
	client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
	if err != nil {
		telemetry.Warn("llm.disabled", map[string]any{"reason": err.Error()})
		return llm.Disabled{}, false
	}
	return client, true
}
