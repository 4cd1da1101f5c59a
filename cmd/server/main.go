package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-builder/internal/adapter/cache"
	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	ai "resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var documents usecase.DocumentsRepo
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDocumentsPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool); err != nil {
			return err
		}
		documents = repo.NewDocumentsRepo(pool)
	} else {
		logger.Warn("DOCUMENTS_DATABASE_URL not set, documents are kept in memory")
		documents = repo.NewMemoryRepo()
	}

	var exportCache usecase.ExportCache
	if cfg.RedisURL != "" {
		c, err := cache.NewExportCache(ctx, cfg.RedisURL, cfg.ExportCacheTTL)
		if err != nil {
			logger.Warn("export cache disabled", "error", err)
		} else {
			defer c.Close()
			exportCache = c
		}
	}

	renderer := infra.NewChromedpRenderer(
		infra.WithChromePath(cfg.ChromePath),
		infra.WithTimeout(cfg.RenderTimeout),
	)
	aiClient := ai.NewClient(cfg.AIServiceURL)
	aiClient.DefaultLanguage = cfg.AILanguage
	aiClient.Log = logger.With("component", "ai")

	docs := usecase.NewDocuments(documents, logger.With("component", "documents"))
	exports := usecase.NewExporter(documents, renderer, exportCache, logger.With("component", "export"))
	skills := usecase.NewSkills(docs, aiClient, logger.With("component", "skills"))

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          cfg.RenderTimeout + 30*time.Second,
	})
	app.Get("/healthz", httpadapter.Health)
	h := httpadapter.NewHandler(docs, exports, skills, logger.With("component", "http"))
	h.Register(app, httpadapter.AuthMiddleware(cfg.JWTSecret))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "port", cfg.Port)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	})
	return g.Wait()
}
