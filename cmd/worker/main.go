package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fostercareuk/directory-service/internal/config"
	"github.com/fostercareuk/directory-service/internal/pkg/logger"
	"github.com/fostercareuk/directory-service/internal/repository/postgres"
	"github.com/fostercareuk/directory-service/internal/usecase"
	"github.com/fostercareuk/directory-service/internal/worker"
	"github.com/fostercareuk/directory-service/internal/worker/sitemap"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting directory worker")

	if !cfg.Sitemap.Enabled {
		log.Info("Sitemap worker disabled, nothing to run")
		return
	}

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	locationRepo := postgres.NewLocationRepository(db)
	agencyRepo := postgres.NewAgencyRepository(db)
	specialismRepo := postgres.NewSpecialismRepository(db)
	blogRepo := postgres.NewBlogRepository(db)

	sitemapUC := usecase.NewSitemapUseCase(
		locationRepo,
		agencyRepo,
		specialismRepo,
		blogRepo,
		log,
		cfg.Server.BaseURL,
	)

	manager := worker.NewManager(log)
	manager.Register(sitemap.NewWorker(sitemapUC, cfg.Sitemap, log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workers...")
	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}

	log.Info("Workers stopped")
}
