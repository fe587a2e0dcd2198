package handler

import (
	"github.com/fostercareuk/directory-service/internal/pkg/errors"
	"github.com/fostercareuk/directory-service/internal/pkg/utils"
	"github.com/fostercareuk/directory-service/internal/pkg/validator"
	"github.com/fostercareuk/directory-service/internal/usecase"
	"github.com/fostercareuk/directory-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AgencyHandler serves the agency directory endpoints.
type AgencyHandler struct {
	agencyUC *usecase.AgencyUseCase
	logger   *zap.Logger
}

func NewAgencyHandler(agencyUC *usecase.AgencyUseCase, logger *zap.Logger) *AgencyHandler {
	return &AgencyHandler{
		agencyUC: agencyUC,
		logger:   logger,
	}
}

// List godoc
// @Summary List fostering agencies
// @Description Lists agencies, optionally filtered by specialism slug and/or covered location slug
// @Tags Agencies
// @Produce json
// @Param specialism query string false "Specialism slug filter"
// @Param location query string false "Location slug filter"
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.AgencyListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/agencies [get]
func (h *AgencyHandler) List(c *fiber.Ctx) error {
	var req dto.ListAgenciesRequest
	req.Specialism = c.Query("specialism")
	req.Location = c.Query("location")
	req.Limit = c.QueryInt("limit", 50)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.agencyUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: req.Limit,
	})
}

// GetBySlug godoc
// @Summary Agency detail
// @Description Returns one agency with its covered locations and offered specialisms
// @Tags Agencies
// @Produce json
// @Param slug path string true "Agency slug"
// @Success 200 {object} utils.SuccessResponse{data=dto.AgencyDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/agencies/{slug} [get]
func (h *AgencyHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	detail, err := h.agencyUC.GetBySlug(c.Context(), slug)
	if err != nil {
		return utils.SendError(c, err)
	}
	if detail == nil {
		return utils.SendError(c, errors.ErrAgencyNotFound)
	}

	return utils.SendSuccess(c, detail, nil)
}
