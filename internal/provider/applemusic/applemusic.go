package applemusic

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/sydlexius/crossref/internal/provider"
)

// DefaultCountry is the storefront used when none is given.
const DefaultCountry = "us"

// urlPattern matches music.apple.com and legacy itunes.apple.com URLs with an
// optional storefront and an optional name slug before the numeric ID.
var urlPattern = regexp.MustCompile(`^https?://(?:music|itunes|geo\.music)\.apple\.com/(?:([a-z]{2})/)?(artist|album|song)/(?:[^/?#]+/)?(?:id)?(\d+)(?:[/?#].*)?$`)

var countryPattern = regexp.MustCompile(`^[a-z]{2}$`)

// Parser implements provider.Parser and provider.RegionalURLCreator for
// Apple Music. IDs are numeric strings.
type Parser struct{}

// New creates an Apple Music parser.
func New() *Parser { return &Parser{} }

// Name returns the provider identifier.
func (p *Parser) Name() provider.ProviderName { return provider.NameAppleMusic }

// ParseURL extracts the entity type and ID from an Apple Music URL. An album
// URL carrying an "i" query parameter points at a single track on that album.
func (p *Parser) ParseURL(raw string) *provider.URLData {
	raw = strings.TrimSpace(raw)
	m := urlPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	t := typeForSegment(m[2])
	id := m[3]
	if t == provider.TypeAlbum {
		if u, err := url.Parse(raw); err == nil {
			if trackID := u.Query().Get("i"); isDigits(trackID) {
				return &provider.URLData{Type: provider.TypeTrack, ID: trackID}
			}
		}
	}
	return &provider.URLData{Type: t, ID: id}
}

// CreateURL builds a URL in the default storefront.
func (p *Parser) CreateURL(t provider.URLType, id string) string {
	return p.CreateRegionalURL(t, id, DefaultCountry)
}

// CreateRegionalURL builds a URL in the given storefront. An empty or
// malformed country falls back to DefaultCountry.
func (p *Parser) CreateRegionalURL(t provider.URLType, id, country string) string {
	segment := segmentForType(t)
	if segment == "" || id == "" {
		return ""
	}
	country = strings.ToLower(strings.TrimSpace(country))
	if !countryPattern.MatchString(country) {
		country = DefaultCountry
	}
	return fmt.Sprintf("https://music.apple.com/%s/%s/%s", country, segment, id)
}

func typeForSegment(segment string) provider.URLType {
	if segment == "song" {
		return provider.TypeTrack
	}
	return provider.URLType(segment)
}

func segmentForType(t provider.URLType) string {
	switch t {
	case provider.TypeArtist:
		return "artist"
	case provider.TypeAlbum:
		return "album"
	case provider.TypeTrack:
		return "song"
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
