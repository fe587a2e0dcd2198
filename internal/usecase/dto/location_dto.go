package dto

import (
	"github.com/fostercareuk/directory-service/internal/domain"
)

// LocationDTO is the wire shape of a hierarchy node.
type LocationDTO struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// BreadcrumbDTO is one element of the root-to-leaf trail.
type BreadcrumbDTO struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LocationPageResponse is everything the site needs to render one
// location page. Sections that failed to load are present but empty;
// a page is never withheld because a secondary lookup failed.
type LocationPageResponse struct {
	Location      LocationDTO            `json:"location"`
	CanonicalPath string                 `json:"canonical_path"`
	Breadcrumbs   []BreadcrumbDTO        `json:"breadcrumbs"`
	Children      []LocationDTO          `json:"children"`
	ContentTitle  string                 `json:"content_title,omitempty"`
	Content       domain.ContentDocument `json:"content,omitempty"`
	Agencies      []AgencyDTO            `json:"agencies"`
	Specialism    *SpecialismDTO         `json:"specialism,omitempty"`
}

// ConvertLocation maps a domain location onto its DTO. The URL is filled
// in by the caller once the location's path is known.
func ConvertLocation(loc *domain.Location) LocationDTO {
	return LocationDTO{
		ID:   loc.ID.String(),
		Slug: loc.Slug,
		Name: loc.Name,
		Type: string(loc.Type),
	}
}
