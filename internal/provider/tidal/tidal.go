package tidal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sydlexius/crossref/internal/provider"
)

const baseURL = "https://tidal.com/browse"

// urlPattern matches tidal.com, www.tidal.com and listen.tidal.com URLs with
// or without the /browse prefix.
var urlPattern = regexp.MustCompile(`^https?://(?:www\.|listen\.)?tidal\.com/(?:browse/)?(artist|track|album)/(\d+)(?:[/?#].*)?$`)

// Parser implements provider.Parser for Tidal. IDs are numeric strings.
type Parser struct{}

// New creates a Tidal parser.
func New() *Parser { return &Parser{} }

// Name returns the provider identifier.
func (p *Parser) Name() provider.ProviderName { return provider.NameTidal }

// ParseURL extracts the entity type and numeric ID from a Tidal URL.
func (p *Parser) ParseURL(raw string) *provider.URLData {
	m := urlPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil
	}
	return &provider.URLData{Type: provider.URLType(m[1]), ID: m[2]}
}

// CreateURL interpolates the type and ID into a Tidal URL.
func (p *Parser) CreateURL(t provider.URLType, id string) string {
	if !provider.ValidURLType(t) || id == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", baseURL, t, id)
}
