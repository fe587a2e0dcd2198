package usecase

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapUseCase enumerates all public pages (locations, agencies,
// specialisms, blog posts) into a sitemap XML document.
type SitemapUseCase struct {
	locationRepo   repository.LocationRepository
	agencyRepo     repository.AgencyRepository
	specialismRepo repository.SpecialismRepository
	blogRepo       repository.BlogRepository
	logger         *zap.Logger
	baseURL        string
}

func NewSitemapUseCase(
	locationRepo repository.LocationRepository,
	agencyRepo repository.AgencyRepository,
	specialismRepo repository.SpecialismRepository,
	blogRepo repository.BlogRepository,
	logger *zap.Logger,
	baseURL string,
) *SitemapUseCase {
	return &SitemapUseCase{
		locationRepo:   locationRepo,
		agencyRepo:     agencyRepo,
		specialismRepo: specialismRepo,
		blogRepo:       blogRepo,
		logger:         logger,
		baseURL:        strings.TrimRight(baseURL, "/"),
	}
}

// Build renders the sitemap. Location enumeration is required; the other
// sections degrade to absent entries when their lookup fails.
func (uc *SitemapUseCase) Build(ctx context.Context) ([]byte, error) {
	urlset := sitemapURLSet{XMLNS: sitemapXMLNS}

	urlset.URLs = append(urlset.URLs,
		sitemapURL{Loc: uc.baseURL + "/"},
		sitemapURL{Loc: uc.baseURL + "/agencies"},
		sitemapURL{Loc: uc.baseURL + "/specialisms"},
	)

	locations, err := uc.locationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.Location, len(locations))
	for _, loc := range locations {
		byID[loc.ID] = loc
	}

	for _, loc := range locations {
		urlset.URLs = append(urlset.URLs, sitemapURL{
			Loc:     uc.baseURL + locationURL(loc, byID),
			LastMod: loc.UpdatedAt.Format("2006-01-02"),
		})
	}

	if agencies, err := uc.agencyRepo.ListAll(ctx); err != nil {
		uc.logger.Warn("Sitemap agency enumeration failed", zap.Error(err))
	} else {
		for _, a := range agencies {
			urlset.URLs = append(urlset.URLs, sitemapURL{
				Loc:     uc.baseURL + "/agencies/" + a.Slug,
				LastMod: a.UpdatedAt.Format("2006-01-02"),
			})
		}
	}

	if specialisms, err := uc.specialismRepo.List(ctx); err != nil {
		uc.logger.Warn("Sitemap specialism enumeration failed", zap.Error(err))
	} else {
		for _, s := range specialisms {
			urlset.URLs = append(urlset.URLs, sitemapURL{
				Loc: uc.baseURL + "/specialisms/" + s.Slug,
			})
		}
	}

	if posts, err := uc.blogRepo.ListPublished(ctx); err != nil {
		uc.logger.Warn("Sitemap blog enumeration failed", zap.Error(err))
	} else {
		for _, p := range posts {
			urlset.URLs = append(urlset.URLs, sitemapURL{
				Loc:     uc.baseURL + "/blog/" + p.Slug,
				LastMod: p.PublishedAt.Format("2006-01-02"),
			})
		}
	}

	data, err := xml.MarshalIndent(urlset, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}

	return append([]byte(xml.Header), data...), nil
}

// WriteFile builds the sitemap and writes it atomically (temp file plus
// rename) so readers never observe a partial document.
func (uc *SitemapUseCase) WriteFile(ctx context.Context, path string) error {
	data, err := uc.Build(ctx)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sitemap dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "sitemap-*.xml")
	if err != nil {
		return fmt.Errorf("create temp sitemap: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write sitemap: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close sitemap: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publish sitemap: %w", err)
	}

	uc.logger.Info("Sitemap written",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Time("at", time.Now()))

	return nil
}

// locationURL rebuilds a location's canonical URL from the in-memory id
// map, bounded the same way as the upward walk.
func locationURL(loc *domain.Location, byID map[uuid.UUID]*domain.Location) string {
	path := []*domain.Location{loc}
	current := loc
	for i := 0; i < maxPathDepth && current.ParentID != nil; i++ {
		parent, ok := byID[*current.ParentID]
		if !ok {
			break
		}
		path = append([]*domain.Location{parent}, path...)
		current = parent
	}
	return BuildURL(path)
}
