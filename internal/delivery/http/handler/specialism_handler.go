package handler

import (
	"github.com/fostercareuk/directory-service/internal/pkg/utils"
	"github.com/fostercareuk/directory-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SpecialismHandler serves the fostering-type listing.
type SpecialismHandler struct {
	agencyUC *usecase.AgencyUseCase
	logger   *zap.Logger
}

func NewSpecialismHandler(agencyUC *usecase.AgencyUseCase, logger *zap.Logger) *SpecialismHandler {
	return &SpecialismHandler{
		agencyUC: agencyUC,
		logger:   logger,
	}
}

// List godoc
// @Summary List fostering specialisms
// @Tags Specialisms
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SpecialismListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/specialisms [get]
func (h *SpecialismHandler) List(c *fiber.Ctx) error {
	result, err := h.agencyUC.ListSpecialisms(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
