package main

// @title Foster Care UK Directory API
// @version 1.0.0
// @description Directory/content API for the Foster Care UK site. Owns the
// @description location hierarchy (country, region, county, city), location
// @description editorial content, agency and specialism listings, canonical
// @description /locations redirects and sitemap generation.

// @contact.name API Support
// @contact.email support@fostercare.uk

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/fostercareuk/directory-service/docs"
	"github.com/fostercareuk/directory-service/internal/config"
	httpDelivery "github.com/fostercareuk/directory-service/internal/delivery/http"
	"github.com/fostercareuk/directory-service/internal/delivery/http/handler"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	"github.com/fostercareuk/directory-service/internal/pkg/logger"
	"github.com/fostercareuk/directory-service/internal/repository/cache"
	"github.com/fostercareuk/directory-service/internal/repository/noop"
	"github.com/fostercareuk/directory-service/internal/repository/postgres"
	"github.com/fostercareuk/directory-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Foster Care UK Directory Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL. With degraded mode allowed the service
	// keeps running on no-op repositories and answers every request with
	// empty results instead of crashing.
	var (
		locationRepo   repository.LocationRepository
		contentRepo    repository.ContentRepository
		agencyRepo     repository.AgencyRepository
		specialismRepo repository.SpecialismRepository
		blogRepo       repository.BlogRepository
	)

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		if !cfg.Database.DegradedModeAllowed {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		log.Error("PostgreSQL unavailable, running in degraded mode with empty results", zap.Error(err))
		locationRepo = noop.NewLocationRepository()
		contentRepo = noop.NewContentRepository()
		agencyRepo = noop.NewAgencyRepository()
		specialismRepo = noop.NewSpecialismRepository()
		blogRepo = noop.NewBlogRepository()
	} else {
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		log.Info("PostgreSQL connected")

		locationRepo = postgres.NewLocationRepository(db)
		contentRepo = postgres.NewContentRepository(db)
		agencyRepo = postgres.NewAgencyRepository(db)
		specialismRepo = postgres.NewSpecialismRepository(db)
		blogRepo = postgres.NewBlogRepository(db)
	}

	// 4. Connect to Redis. The cache is optional: when unreachable the
	// no-op cache keeps every read going straight to the store.
	var cacheRepo repository.CacheRepository

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err == nil {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Health(pingCtx)
		cancel()
	}
	if err != nil {
		log.Warn("Redis unavailable, page and content caching disabled", zap.Error(err))
		cacheRepo = noop.NewCacheRepository()
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		log.Info("Redis connected")
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	log.Info("Repositories initialized")

	// 5. Initialize Use Cases
	resolverUC := usecase.NewResolverUseCase(locationRepo, specialismRepo, log)
	hierarchyUC := usecase.NewHierarchyUseCase(locationRepo, log)
	contentUC := usecase.NewContentUseCase(contentRepo, cacheRepo, log, cfg.Cache.ContentCacheTTL)

	pageUC := usecase.NewPageUseCase(
		resolverUC,
		hierarchyUC,
		contentUC,
		agencyRepo,
		cacheRepo,
		log,
		cfg.Cache.PageCacheTTL,
	)

	agencyUC := usecase.NewAgencyUseCase(agencyRepo, locationRepo, specialismRepo, log)

	sitemapUC := usecase.NewSitemapUseCase(
		locationRepo,
		agencyRepo,
		specialismRepo,
		blogRepo,
		log,
		cfg.Server.BaseURL,
	)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	locationHandler := handler.NewLocationHandler(pageUC, log)
	agencyHandler := handler.NewAgencyHandler(agencyUC, log)
	specialismHandler := handler.NewSpecialismHandler(agencyUC, log)
	sitemapHandler := handler.NewSitemapHandler(sitemapUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		locationHandler,
		agencyHandler,
		specialismHandler,
		sitemapHandler,
	)

	log.Info("HTTP server initialized")

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
