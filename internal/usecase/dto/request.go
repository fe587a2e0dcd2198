package dto

// ListAgenciesRequest filters the agency listing. Slugs arrive from query
// parameters and are validated before use.
type ListAgenciesRequest struct {
	Specialism string `json:"specialism" validate:"omitempty,max=64"`
	Location   string `json:"location" validate:"omitempty,max=64"`
	Limit      int    `json:"limit" validate:"gte=0,lte=100"`
}
