package middleware

import (
	"strings"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const locationsPrefix = "/locations"

// maxPathSegments caps location paths at country/region/county-or-city
// granularity; deeper segments are dropped silently.
const maxPathSegments = 3

// NormalizeSegments rewrites a /locations/... segment list into its
// canonical form:
//  1. drop segments that are service qualifiers,
//  2. collapse adjacent case-insensitive duplicates,
//  3. prepend the default country when the path does not start with one,
//  4. truncate to maxPathSegments.
//
// The function is total: every input, including the empty list, maps to a
// defined output. Surviving segments keep their original casing; path
// comparison is the caller's concern and is case-insensitive.
func NormalizeSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if domain.IsServiceQualifier(seg) {
			continue
		}
		if len(out) > 0 && strings.EqualFold(out[len(out)-1], seg) {
			continue
		}
		out = append(out, seg)
	}

	if len(out) == 0 || !domain.IsCountrySlug(out[0]) {
		out = append([]string{domain.DefaultCountrySlug}, out...)
	}

	if len(out) > maxPathSegments {
		out = out[:maxPathSegments]
	}

	return out
}

// SplitPathSegments extracts the non-empty segments after the /locations
// prefix of a request path.
func SplitPathSegments(path string) []string {
	trimmed := strings.TrimPrefix(path, locationsPrefix)
	parts := strings.Split(trimmed, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// CanonicalRedirect intercepts /locations/... requests and issues a
// permanent redirect whenever the normalized path differs from the
// requested one. Already-canonical requests pass through unchanged.
func CanonicalRedirect(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if !strings.HasPrefix(path, locationsPrefix) {
			return c.Next()
		}

		segments := SplitPathSegments(path)
		normalized := NormalizeSegments(segments)
		canonical := locationsPrefix + "/" + strings.Join(normalized, "/")

		if strings.EqualFold(strings.TrimRight(path, "/"), canonical) {
			return c.Next()
		}

		logger.Debug("Redirecting to canonical location path",
			zap.String("from", path),
			zap.String("to", canonical))

		return c.Redirect(canonical, fiber.StatusMovedPermanently)
	}
}
