package bandcamp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sydlexius/crossref/internal/provider"
)

// urlPattern matches per-artist subdomains. Album and track pages carry a
// slug; a bare subdomain (optionally /music) is the artist page.
var urlPattern = regexp.MustCompile(`^https?://([a-z0-9][a-z0-9-]*)\.bandcamp\.com(?:/(track|album)/([A-Za-z0-9_-]+)|/music)?/?(?:[?#].*)?$`)

// reserved subdomains belong to Bandcamp itself, not to artists.
var reserved = map[string]bool{
	"www":   true,
	"daily": true,
	"blog":  true,
}

// Parser implements provider.Parser for Bandcamp. Album and track IDs are
// composite "subdomain/type/slug" strings; artist IDs are the subdomain.
type Parser struct{}

// New creates a Bandcamp parser.
func New() *Parser { return &Parser{} }

// Name returns the provider identifier.
func (p *Parser) Name() provider.ProviderName { return provider.NameBandcamp }

// ParseURL extracts the entity type and composite ID from a Bandcamp URL.
func (p *Parser) ParseURL(raw string) *provider.URLData {
	m := urlPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil || reserved[m[1]] {
		return nil
	}
	subdomain, kind, slug := m[1], m[2], m[3]
	if kind == "" {
		return &provider.URLData{Type: provider.TypeArtist, ID: subdomain}
	}
	return &provider.URLData{
		Type: provider.URLType(kind),
		ID:   subdomain + "/" + kind + "/" + slug,
	}
}

// CreateURL rebuilds a Bandcamp URL. Album and track IDs are split back into
// their three parts; anything that does not split cleanly yields "".
func (p *Parser) CreateURL(t provider.URLType, id string) string {
	switch t {
	case provider.TypeArtist:
		if id == "" || strings.Contains(id, "/") {
			return ""
		}
		return fmt.Sprintf("https://%s.bandcamp.com", id)
	case provider.TypeAlbum, provider.TypeTrack:
		parts := strings.Split(id, "/")
		if len(parts) != 3 || parts[0] == "" || parts[1] != string(t) || parts[2] == "" {
			return ""
		}
		return fmt.Sprintf("https://%s.bandcamp.com/%s/%s", parts[0], parts[1], parts[2])
	}
	return ""
}
