package dto

import (
	"github.com/fostercareuk/directory-service/internal/domain"
)

// AgencyDTO is the wire shape of one directory listing.
type AgencyDTO struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Website     *string `json:"website,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	URL         string  `json:"url"`
}

// SpecialismDTO is the wire shape of a fostering type.
type SpecialismDTO struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AgencyDetailResponse is an agency listing with its coverage and
// offered specialisms resolved.
type AgencyDetailResponse struct {
	Agency      AgencyDTO       `json:"agency"`
	Locations   []LocationDTO   `json:"locations"`
	Specialisms []SpecialismDTO `json:"specialisms"`
}

// AgencyListResponse wraps a filtered agency listing.
type AgencyListResponse struct {
	Agencies []AgencyDTO `json:"agencies"`
	Total    int         `json:"total"`
}

// SpecialismListResponse wraps the specialism listing.
type SpecialismListResponse struct {
	Specialisms []SpecialismDTO `json:"specialisms"`
	Total       int             `json:"total"`
}

func ConvertAgency(a *domain.Agency) AgencyDTO {
	return AgencyDTO{
		ID:          a.ID.String(),
		Slug:        a.Slug,
		Name:        a.Name,
		Description: a.Description,
		Website:     a.Website,
		Phone:       a.Phone,
		URL:         "/agencies/" + a.Slug,
	}
}

func ConvertAgencies(agencies []*domain.Agency) []AgencyDTO {
	out := make([]AgencyDTO, 0, len(agencies))
	for _, a := range agencies {
		out = append(out, ConvertAgency(a))
	}
	return out
}

func ConvertSpecialism(s *domain.Specialism) SpecialismDTO {
	return SpecialismDTO{
		ID:          s.ID.String(),
		Slug:        s.Slug,
		Name:        s.Name,
		Description: s.Description,
	}
}

func ConvertSpecialisms(specialisms []*domain.Specialism) []SpecialismDTO {
	out := make([]SpecialismDTO, 0, len(specialisms))
	for _, s := range specialisms {
		out = append(out, ConvertSpecialism(s))
	}
	return out
}
