package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is enumerated for sitemap generation only; rendering lives in
// the site frontend.
type BlogPost struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Slug        string    `json:"slug" db:"slug"`
	Title       string    `json:"title" db:"title"`
	PublishedAt time.Time `json:"published_at" db:"published_at"`
}
