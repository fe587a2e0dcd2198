package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Specialism is a fostering type offered by agencies (short-term,
// therapeutic, parent-and-child, ...). Stored rows carry editorial copy;
// the service-qualifier set below is the static URL vocabulary that maps
// onto them.
type Specialism struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Slug        string    `json:"slug" db:"slug"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
}

const fosteringSuffix = "-fostering"

// serviceQualifierSlugs is the canonical set of path segments that denote
// a fostering type rather than a place. Each entry also matches with a
// "-fostering" suffix (e.g. "short-term-fostering").
var serviceQualifierSlugs = map[string]struct{}{
	"short-term":       {},
	"long-term":        {},
	"emergency":        {},
	"respite":          {},
	"therapeutic":      {},
	"parent-and-child": {},
	"sibling-groups":   {},
	"teenagers":        {},
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsServiceQualifier reports whether a path segment denotes a fostering
// type. Matching is case-insensitive and accepts the "-fostering" suffixed
// synonym of every qualifier.
func IsServiceQualifier(segment string) bool {
	_, ok := CanonicalQualifier(segment)
	return ok
}

// CanonicalQualifier resolves a path segment to its canonical qualifier
// slug, stripping the "-fostering" suffix synonym. The second return is
// false when the segment is not a service qualifier.
func CanonicalQualifier(segment string) (string, bool) {
	s := normalizeSlug(segment)
	s = strings.TrimSuffix(s, fosteringSuffix)
	if _, ok := serviceQualifierSlugs[s]; !ok {
		return "", false
	}
	return s, true
}
