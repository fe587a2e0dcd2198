package handler

import (
	"github.com/fostercareuk/directory-service/internal/delivery/http/middleware"
	"github.com/fostercareuk/directory-service/internal/pkg/errors"
	"github.com/fostercareuk/directory-service/internal/pkg/utils"
	"github.com/fostercareuk/directory-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocationHandler serves location pages under /locations/...
type LocationHandler struct {
	pageUC *usecase.PageUseCase
	logger *zap.Logger
}

func NewLocationHandler(pageUC *usecase.PageUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		pageUC: pageUC,
		logger: logger,
	}
}

// GetPage godoc
// @Summary Location page payload
// @Description Resolves a canonical /locations path into the full page payload: location, breadcrumbs, child locations, editorial content, matching agencies and an optional fostering-type specialism. Non-canonical paths are redirected before this handler runs.
// @Tags Locations
// @Produce json
// @Param path path string true "Location path segments (country/region/county)"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationPageResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /locations/{path} [get]
func (h *LocationHandler) GetPage(c *fiber.Ctx) error {
	segments := middleware.SplitPathSegments(c.Path())

	page, err := h.pageUC.GetLocationPage(c.Context(), segments)
	if err != nil {
		return utils.SendError(c, err)
	}
	if page == nil {
		return utils.SendError(c, errors.ErrLocationNotFound)
	}

	return utils.SendSuccess(c, page, nil)
}
