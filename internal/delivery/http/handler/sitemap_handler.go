package handler

import (
	"github.com/fostercareuk/directory-service/internal/pkg/utils"
	"github.com/fostercareuk/directory-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SitemapHandler serves the sitemap on demand. The background worker
// writes the same document to disk on its own schedule.
type SitemapHandler struct {
	sitemapUC *usecase.SitemapUseCase
	logger    *zap.Logger
}

func NewSitemapHandler(sitemapUC *usecase.SitemapUseCase, logger *zap.Logger) *SitemapHandler {
	return &SitemapHandler{
		sitemapUC: sitemapUC,
		logger:    logger,
	}
}

// Get godoc
// @Summary Sitemap XML
// @Description Enumerates all location, agency, specialism and blog URLs
// @Tags Sitemap
// @Produce xml
// @Success 200 {string} string "sitemap document"
// @Failure 500 {object} utils.ErrorResponse
// @Router /sitemap.xml [get]
func (h *SitemapHandler) Get(c *fiber.Ctx) error {
	data, err := h.sitemapUC.Build(c.Context())
	if err != nil {
		h.logger.Error("Failed to build sitemap", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(data)
}
