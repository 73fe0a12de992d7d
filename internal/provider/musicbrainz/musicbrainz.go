package musicbrainz

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/sydlexius/crossref/internal/provider"
)

const baseURL = "https://musicbrainz.org"

// urlPattern matches musicbrainz.org entity pages. The identifier is checked
// against the canonical UUID format after matching.
var urlPattern = regexp.MustCompile(`^https?://(?:beta\.)?musicbrainz\.org/(artist|release|recording)/([0-9a-fA-F-]{36})(?:[/?#].*)?$`)

// entityTypes maps MusicBrainz entity names to URL types.
var entityTypes = map[string]provider.URLType{
	"artist":    provider.TypeArtist,
	"release":   provider.TypeAlbum,
	"recording": provider.TypeTrack,
}

// Parser implements provider.Parser and provider.BarcodeLookup for
// MusicBrainz. IDs are MBIDs (UUIDs).
type Parser struct{}

// New creates a MusicBrainz parser.
func New() *Parser { return &Parser{} }

// Name returns the provider identifier.
func (p *Parser) Name() provider.ProviderName { return provider.NameMusicBrainz }

// ParseURL extracts the entity type and MBID from a MusicBrainz URL.
func (p *Parser) ParseURL(raw string) *provider.URLData {
	m := urlPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil
	}
	if _, err := uuid.Parse(m[2]); err != nil {
		return nil
	}
	return &provider.URLData{Type: entityTypes[m[1]], ID: m[2]}
}

// CreateURL builds a MusicBrainz URL using the inverse entity mapping.
func (p *Parser) CreateURL(t provider.URLType, id string) string {
	entity := entityFor(t)
	if entity == "" || id == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", baseURL, entity, id)
}

// UPCLookupURL returns the release search page for a barcode.
func (p *Parser) UPCLookupURL(upc string) string {
	upc = strings.TrimSpace(upc)
	if upc == "" {
		return ""
	}
	q := url.Values{}
	q.Set("query", "barcode:"+upc)
	q.Set("type", "release")
	q.Set("method", "advanced")
	return baseURL + "/search?" + q.Encode()
}

// ISRCLookupURL returns the ISRC page listing recordings with that code.
func (p *Parser) ISRCLookupURL(isrc string) string {
	isrc = strings.ToUpper(strings.TrimSpace(isrc))
	if isrc == "" {
		return ""
	}
	return baseURL + "/isrc/" + url.PathEscape(isrc)
}

func entityFor(t provider.URLType) string {
	for entity, typ := range entityTypes {
		if typ == t {
			return entity
		}
	}
	return ""
}
