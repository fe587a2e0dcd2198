package http

import (
	"context"
	"time"

	"github.com/fostercareuk/directory-service/internal/config"
	"github.com/fostercareuk/directory-service/internal/delivery/http/handler"
	"github.com/fostercareuk/directory-service/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP server built on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	locationHandler   *handler.LocationHandler
	agencyHandler     *handler.AgencyHandler
	specialismHandler *handler.SpecialismHandler
	sitemapHandler    *handler.SitemapHandler
}

// NewServer - create a new HTTP server
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	locationHandler *handler.LocationHandler,
	agencyHandler *handler.AgencyHandler,
	specialismHandler *handler.SpecialismHandler,
	sitemapHandler *handler.SitemapHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Foster Care UK Directory Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		locationHandler:   locationHandler,
		agencyHandler:     agencyHandler,
		specialismHandler: specialismHandler,
		sitemapHandler:    sitemapHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - middleware configuration
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - route configuration
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Location pages: canonical redirect runs before the page handler,
	// so the handler only ever sees canonical paths.
	s.app.Use("/locations", middleware.CanonicalRedirect(s.logger))
	s.app.Get("/locations/*", s.locationHandler.GetPage)
	s.app.Get("/locations", s.locationHandler.GetPage)

	// Sitemap
	s.app.Get("/sitemap.xml", s.sitemapHandler.Get)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Agency routes
	api.Get("/agencies", s.agencyHandler.List)
	api.Get("/agencies/:slug", s.agencyHandler.GetBySlug)

	// Specialism routes
	api.Get("/specialisms", s.specialismHandler.List)
}

// Start - run the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown of the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - custom error handler
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
