// Package bootstrap wires configuration, storage, and services into a
// runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/jobdescriptions"
	"resume-optimizer/internal/llm"
	openai "resume-optimizer/internal/llm/openai"
	"resume-optimizer/internal/optimizations"
	"resume-optimizer/internal/resumes"
	"resume-optimizer/internal/server"
	"resume-optimizer/internal/shared/config"
	"resume-optimizer/internal/shared/storage/db"
	"resume-optimizer/internal/shared/storage/object"
	localstore "resume-optimizer/internal/shared/storage/object/local"
	"resume-optimizer/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumesRepo         resumes.Repo
	JobDescriptionsRepo jobdescriptions.Repo
	OptimizationsRepo   optimizations.Repo

	ResumesService         *resumes.Service
	JobDescriptionsService *jobdescriptions.Service
	OptimizationsService   *optimizations.Service
}

// Build prepares shared dependencies and the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	gateway, err := buildGateway(cfg)
	if err != nil {
		return nil, err
	}

	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.JobDescriptionsRepo = &jobdescriptions.PGRepo{DB: app.DB}
		app.OptimizationsRepo = &optimizations.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.JobDescriptionsRepo = jobdescriptions.NewMemoryRepo()
		app.OptimizationsRepo = optimizations.NewMemoryRepo()
	}

	app.ResumesService = resumes.NewService(app.ResumesRepo, app.Store, gateway)
	app.JobDescriptionsService = jobdescriptions.NewService(app.JobDescriptionsRepo, gateway)
	app.OptimizationsService = optimizations.NewService(app.OptimizationsRepo, app.ResumesRepo, app.JobDescriptionsRepo, gateway)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                cfg,
		ResumeHandler:         resumes.NewHandler(app.ResumesService),
		JobDescriptionHandler: jobdescriptions.NewHandler(app.JobDescriptionsService),
		OptimizationHandler:   optimizations.NewHandler(app.OptimizationsService),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{
				"reason": "DATABASE_URL empty",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultOptions())
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{
				"reason": "database connect failed",
				"err":    err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildGateway(cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.placeholder_llm", map[string]any{
				"reason": "OPENAI_API_KEY empty",
			})
			return llm.PlaceholderClient{}, nil
		}
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
