package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agency is a fostering agency listed in the directory. Coverage and
// offered specialisms are modelled as join rows and fetched separately.
type Agency struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Slug        string    `json:"slug" db:"slug"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Website     *string   `json:"website,omitempty" db:"website"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// AgencyFilter narrows agency listings. Zero values mean "no filter".
type AgencyFilter struct {
	SpecialismSlug string
	LocationID     *uuid.UUID
	Limit          int
}
