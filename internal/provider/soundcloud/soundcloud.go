package soundcloud

import (
	"regexp"
	"strings"

	"github.com/sydlexius/crossref/internal/provider"
)

// SoundCloud exposes no stable ID in its URLs, so the whole URL is the ID.
// Patterns are tried in order: a /sets/ path is a playlist (album), a
// profile tab such as /sets or /likes is the user, any other two-segment
// path is a track, and a single segment is the user.
var (
	setPattern        = regexp.MustCompile(`^https?://(?:www\.|m\.)?soundcloud\.com/[^/?#]+/sets/[^/?#]+/?(?:[?#].*)?$`)
	profileTabPattern = regexp.MustCompile(`^(https?://(?:www\.|m\.)?soundcloud\.com/[^/?#]+)/(?:sets|tracks|albums|popular-tracks|reposts|likes|followers|following|comments)/?(?:[?#].*)?$`)
	trackPattern      = regexp.MustCompile(`^https?://(?:www\.|m\.)?soundcloud\.com/[^/?#]+/[^/?#]+/?(?:[?#].*)?$`)
	artistPattern     = regexp.MustCompile(`^https?://(?:www\.|m\.)?soundcloud\.com/[^/?#]+/?(?:[?#].*)?$`)
)

// Parser implements provider.Parser for SoundCloud.
type Parser struct{}

// New creates a SoundCloud parser.
func New() *Parser { return &Parser{} }

// Name returns the provider identifier.
func (p *Parser) Name() provider.ProviderName { return provider.NameSoundCloud }

// ParseURL classifies a SoundCloud URL. The returned ID is the trimmed input,
// except for profile tabs, whose ID is the profile URL.
func (p *Parser) ParseURL(raw string) *provider.URLData {
	raw = strings.TrimSpace(raw)
	if setPattern.MatchString(raw) {
		return &provider.URLData{Type: provider.TypeAlbum, ID: raw}
	}
	if m := profileTabPattern.FindStringSubmatch(raw); m != nil {
		return &provider.URLData{Type: provider.TypeArtist, ID: m[1]}
	}
	switch {
	case trackPattern.MatchString(raw):
		return &provider.URLData{Type: provider.TypeTrack, ID: raw}
	case artistPattern.MatchString(raw):
		return &provider.URLData{Type: provider.TypeArtist, ID: raw}
	}
	return nil
}

// CreateURL only supports artists, whose ID already is the URL. Albums and
// tracks cannot be rebuilt from an ID and yield "".
func (p *Parser) CreateURL(t provider.URLType, id string) string {
	if t != provider.TypeArtist {
		return ""
	}
	return id
}
