package usecase

import (
	"context"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	"github.com/fostercareuk/directory-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// AgencyUseCase serves the agency directory and specialism listings.
type AgencyUseCase struct {
	agencyRepo     repository.AgencyRepository
	locationRepo   repository.LocationRepository
	specialismRepo repository.SpecialismRepository
	logger         *zap.Logger
}

func NewAgencyUseCase(
	agencyRepo repository.AgencyRepository,
	locationRepo repository.LocationRepository,
	specialismRepo repository.SpecialismRepository,
	logger *zap.Logger,
) *AgencyUseCase {
	return &AgencyUseCase{
		agencyRepo:     agencyRepo,
		locationRepo:   locationRepo,
		specialismRepo: specialismRepo,
		logger:         logger,
	}
}

// List returns agencies matching the request filters. An unknown location
// slug yields an empty listing rather than an error.
func (uc *AgencyUseCase) List(ctx context.Context, req dto.ListAgenciesRequest) (*dto.AgencyListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 50
	}

	filter := domain.AgencyFilter{
		SpecialismSlug: req.Specialism,
		Limit:          req.Limit,
	}

	if req.Location != "" {
		loc, err := uc.locationRepo.GetBySlug(ctx, req.Location)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return &dto.AgencyListResponse{Agencies: []dto.AgencyDTO{}}, nil
		}
		filter.LocationID = &loc.ID
	}

	agencies, err := uc.agencyRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list agencies", zap.Error(err))
		return nil, err
	}

	return &dto.AgencyListResponse{
		Agencies: dto.ConvertAgencies(agencies),
		Total:    len(agencies),
	}, nil
}

// GetBySlug returns one agency with its coverage and specialisms. A nil
// response with a nil error means not found.
func (uc *AgencyUseCase) GetBySlug(ctx context.Context, slug string) (*dto.AgencyDetailResponse, error) {
	agency, err := uc.agencyRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if agency == nil {
		return nil, nil
	}

	detail := &dto.AgencyDetailResponse{
		Agency:      dto.ConvertAgency(agency),
		Locations:   []dto.LocationDTO{},
		Specialisms: []dto.SpecialismDTO{},
	}

	// Secondary lookups degrade to empty sections on failure.
	coverageIDs, err := uc.agencyRepo.GetCoverageIDs(ctx, agency.ID)
	if err != nil {
		uc.logger.Warn("Agency coverage lookup failed", zap.String("slug", slug), zap.Error(err))
	} else if len(coverageIDs) > 0 {
		locations, err := uc.locationRepo.GetByIDs(ctx, coverageIDs)
		if err != nil {
			uc.logger.Warn("Coverage locations lookup failed", zap.String("slug", slug), zap.Error(err))
		} else {
			for _, loc := range locations {
				locDTO := dto.ConvertLocation(loc)
				locDTO.URL = LocationsPathPrefix + "/" + loc.Slug
				detail.Locations = append(detail.Locations, locDTO)
			}
		}
	}

	specialisms, err := uc.agencyRepo.GetSpecialisms(ctx, agency.ID)
	if err != nil {
		uc.logger.Warn("Agency specialisms lookup failed", zap.String("slug", slug), zap.Error(err))
	} else {
		detail.Specialisms = dto.ConvertSpecialisms(specialisms)
	}

	return detail, nil
}

// ListSpecialisms returns all stored specialisms.
func (uc *AgencyUseCase) ListSpecialisms(ctx context.Context) (*dto.SpecialismListResponse, error) {
	specialisms, err := uc.specialismRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list specialisms", zap.Error(err))
		return nil, err
	}

	return &dto.SpecialismListResponse{
		Specialisms: dto.ConvertSpecialisms(specialisms),
		Total:       len(specialisms),
	}, nil
}
