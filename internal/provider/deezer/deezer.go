package deezer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sydlexius/crossref/internal/provider"
)

const baseURL = "https://www.deezer.com"

// urlPattern matches deezer.com entity URLs. The optional two-letter locale
// prefix (e.g. /fr/) is ignored.
var urlPattern = regexp.MustCompile(`^https?://(?:www\.)?deezer\.com/(?:[a-z]{2}/)?(artist|track|album)/(\d+)(?:[/?#].*)?$`)

// Parser implements provider.Parser for Deezer. IDs are numeric strings.
type Parser struct{}

// New creates a Deezer parser.
func New() *Parser { return &Parser{} }

// Name returns the provider identifier.
func (p *Parser) Name() provider.ProviderName { return provider.NameDeezer }

// ParseURL extracts the entity type and numeric ID from a Deezer URL.
func (p *Parser) ParseURL(raw string) *provider.URLData {
	m := urlPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil
	}
	return &provider.URLData{Type: provider.URLType(m[1]), ID: m[2]}
}

// CreateURL interpolates the type and ID into a Deezer URL.
func (p *Parser) CreateURL(t provider.URLType, id string) string {
	if !provider.ValidURLType(t) || id == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", baseURL, t, id)
}
