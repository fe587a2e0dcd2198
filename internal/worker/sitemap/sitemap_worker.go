// Package sitemap runs the periodic sitemap regeneration job.
package sitemap

import (
	"context"
	"time"

	"github.com/fostercareuk/directory-service/internal/config"
	"github.com/fostercareuk/directory-service/internal/usecase"
	"go.uber.org/zap"
)

// Worker regenerates the sitemap file on a fixed interval. One build runs
// immediately at startup so a fresh deployment serves a current sitemap.
type Worker struct {
	sitemapUC *usecase.SitemapUseCase
	cfg       config.SitemapConfig
	logger    *zap.Logger
	stop      chan struct{}
}

func NewWorker(sitemapUC *usecase.SitemapUseCase, cfg config.SitemapConfig, logger *zap.Logger) *Worker {
	return &Worker{
		sitemapUC: sitemapUC,
		cfg:       cfg,
		logger:    logger,
		stop:      make(chan struct{}),
	}
}

func (w *Worker) Name() string {
	return "sitemap-generator"
}

func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Sitemap worker started",
		zap.Duration("interval", w.cfg.Interval),
		zap.String("output", w.cfg.OutputPath))

	w.generate(ctx)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.generate(ctx)
		case <-w.stop:
			w.logger.Info("Sitemap worker stopping")
			return nil
		case <-ctx.Done():
			w.logger.Info("Sitemap worker context cancelled")
			return nil
		}
	}
}

func (w *Worker) Stop() error {
	close(w.stop)
	return nil
}

func (w *Worker) generate(ctx context.Context) {
	genCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if err := w.sitemapUC.WriteFile(genCtx, w.cfg.OutputPath); err != nil {
		// A failed run keeps the previous sitemap in place; the next
		// tick retries.
		w.logger.Error("Sitemap generation failed", zap.Error(err))
	}
}
