package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LocationContent is an editorial payload keyed by a composite slug path
// ("england/london/camden", optionally qualifier-suffixed). It is linked
// to a Location by slug convention only; there is no foreign key, and a
// Location may exist without content or vice versa.
type LocationContent struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	Slug       string          `json:"slug" db:"slug"`
	Title      string          `json:"title" db:"title"`
	RawContent json.RawMessage `json:"-" db:"content"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

// ContentDocument is the parsed form of a content payload: a bag of named
// sections (intro, faq, glossary, ...) consumed by the presentation layer.
type ContentDocument map[string]interface{}

// ParseContent decodes the stored payload. Rows written by current tooling
// hold a JSON object; legacy rows hold a JSON-encoded string that itself
// contains the object. A payload that fails to parse either way yields nil,
// which callers must treat the same as a missing record.
func (c *LocationContent) ParseContent() ContentDocument {
	if len(c.RawContent) == 0 {
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(c.RawContent, &v); err != nil {
		return nil
	}

	switch val := v.(type) {
	case map[string]interface{}:
		return ContentDocument(val)
	case string:
		var doc map[string]interface{}
		if err := json.Unmarshal([]byte(val), &doc); err != nil {
			return nil
		}
		return ContentDocument(doc)
	default:
		return nil
	}
}
