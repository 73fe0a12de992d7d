package provider

import "fmt"

// ProviderName uniquely identifies a music provider.
type ProviderName string

// Known provider names. The string values are stable keys and are persisted
// in user settings, so they must never change.
const (
	NameAppleMusic  ProviderName = "applemusic"
	NameBandcamp    ProviderName = "bandcamp"
	NameDeezer      ProviderName = "deezer"
	NameMusicBrainz ProviderName = "musicbrainz"
	NameMusixmatch  ProviderName = "musixmatch"
	NameNaver       ProviderName = "naver"
	NameSoundCloud  ProviderName = "soundcloud"
	NameSpotify     ProviderName = "spotify"
	NameTidal       ProviderName = "tidal"
)

// AllProviderNames returns all known provider names in declared order.
func AllProviderNames() []ProviderName {
	return []ProviderName{
		NameAppleMusic,
		NameBandcamp,
		NameDeezer,
		NameMusicBrainz,
		NameMusixmatch,
		NameNaver,
		NameSoundCloud,
		NameSpotify,
		NameTidal,
	}
}

// Valid reports whether n is one of the known provider names.
func (n ProviderName) Valid() bool {
	for _, known := range AllProviderNames() {
		if n == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name for the provider.
func (n ProviderName) DisplayName() string {
	switch n {
	case NameAppleMusic:
		return "Apple Music"
	case NameBandcamp:
		return "Bandcamp"
	case NameDeezer:
		return "Deezer"
	case NameMusicBrainz:
		return "MusicBrainz"
	case NameMusixmatch:
		return "Musixmatch"
	case NameNaver:
		return "Naver VIBE"
	case NameSoundCloud:
		return "SoundCloud"
	case NameSpotify:
		return "Spotify"
	case NameTidal:
		return "Tidal"
	default:
		return string(n)
	}
}

// URLType classifies the kind of entity a provider URL points at.
type URLType string

// Known URL types.
const (
	TypeArtist URLType = "artist"
	TypeAlbum  URLType = "album"
	TypeTrack  URLType = "track"
)

// ValidURLType reports whether t is one of artist, album or track.
func ValidURLType(t URLType) bool {
	switch t {
	case TypeArtist, TypeAlbum, TypeTrack:
		return true
	}
	return false
}

// URLData is the result of matching one URL against one provider's pattern.
// A nil *URLData means the pattern did not match.
type URLData struct {
	Type URLType `json:"type"`
	ID   string  `json:"id"`
}

// URLInfo is the resolved identity of an arbitrary input URL.
type URLInfo struct {
	Provider ProviderName `json:"provider"`
	Type     URLType      `json:"type"`
	ID       string       `json:"id"`
}

// Parser is the capability every provider registers: turning a URL into a
// {type, id} pair and back.
type Parser interface {
	// Name returns the unique provider identifier.
	Name() ProviderName

	// ParseURL matches raw against the provider's URL pattern. Returns nil
	// when the pattern does not match. Never panics on malformed input.
	ParseURL(raw string) *URLData

	// CreateURL builds the canonical URL for an entity. Returns "" when the
	// provider cannot construct a URL for the given type.
	CreateURL(t URLType, id string) string
}

// RegionalURLCreator is an optional capability for providers whose URLs
// carry a storefront or country segment.
type RegionalURLCreator interface {
	Parser
	CreateRegionalURL(t URLType, id, country string) string
}

// BarcodeLookup is an optional capability for providers that can be
// searched by release barcode or recording ISRC.
type BarcodeLookup interface {
	Parser
	UPCLookupURL(upc string) string
	ISRCLookupURL(isrc string) string
}

// ErrUnknownProvider indicates a caller named a provider that is not
// registered.
type ErrUnknownProvider struct {
	Provider ProviderName
}

func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown provider %q", e.Provider)
}
