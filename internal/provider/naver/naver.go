package naver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sydlexius/crossref/internal/provider"
)

const baseURL = "https://vibe.naver.com"

// urlPattern matches VIBE entity pages. The path segment is passed through
// as the type without checking it against the known URL types, so playlist
// and mix pages resolve too.
var urlPattern = regexp.MustCompile(`^https?://vibe\.naver\.com/([a-z]+)/(\d+)(?:[/?#].*)?$`)

// Parser implements provider.Parser for Naver VIBE. IDs are numeric strings.
type Parser struct{}

// New creates a Naver VIBE parser.
func New() *Parser { return &Parser{} }

// Name returns the provider identifier.
func (p *Parser) Name() provider.ProviderName { return provider.NameNaver }

// ParseURL extracts the path segment and numeric ID from a VIBE URL.
func (p *Parser) ParseURL(raw string) *provider.URLData {
	m := urlPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil
	}
	return &provider.URLData{Type: provider.URLType(m[1]), ID: m[2]}
}

// CreateURL interpolates the type and ID into a VIBE URL.
func (p *Parser) CreateURL(t provider.URLType, id string) string {
	if t == "" || id == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", baseURL, t, id)
}
