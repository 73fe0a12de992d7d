package spotify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sydlexius/crossref/internal/provider"
)

const baseURL = "https://open.spotify.com"

// urlPattern matches open.spotify.com entity URLs, including the localized
// intl-xx path prefix. IDs are 22-character base62 strings.
var urlPattern = regexp.MustCompile(`^https?://open\.spotify\.com/(?:intl-[a-z]{2}(?:-[a-zA-Z]{2})?/)?(artist|track|album)/([0-9A-Za-z]{22})(?:[/?#].*)?$`)

// Parser implements provider.Parser for Spotify.
type Parser struct{}

// New creates a Spotify parser.
func New() *Parser { return &Parser{} }

// Name returns the provider identifier.
func (p *Parser) Name() provider.ProviderName { return provider.NameSpotify }

// ParseURL extracts the entity type and base62 ID from a Spotify URL.
func (p *Parser) ParseURL(raw string) *provider.URLData {
	m := urlPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil
	}
	return &provider.URLData{Type: provider.URLType(m[1]), ID: m[2]}
}

// CreateURL interpolates the type and ID into a Spotify URL.
func (p *Parser) CreateURL(t provider.URLType, id string) string {
	if !provider.ValidURLType(t) || id == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", baseURL, t, id)
}
