// Package builtin assembles the provider registry with every supported
// provider in declared order.
package builtin

import (
	"sync"

	"github.com/sydlexius/crossref/internal/provider"
	"github.com/sydlexius/crossref/internal/provider/applemusic"
	"github.com/sydlexius/crossref/internal/provider/bandcamp"
	"github.com/sydlexius/crossref/internal/provider/deezer"
	"github.com/sydlexius/crossref/internal/provider/musicbrainz"
	"github.com/sydlexius/crossref/internal/provider/musixmatch"
	"github.com/sydlexius/crossref/internal/provider/naver"
	"github.com/sydlexius/crossref/internal/provider/soundcloud"
	"github.com/sydlexius/crossref/internal/provider/spotify"
	"github.com/sydlexius/crossref/internal/provider/tidal"
)

// Parsers returns one parser per provider, in provider.AllProviderNames order.
func Parsers() []provider.Parser {
	return []provider.Parser{
		applemusic.New(),
		bandcamp.New(),
		deezer.New(),
		musicbrainz.New(),
		musixmatch.New(),
		naver.New(),
		soundcloud.New(),
		spotify.New(),
		tidal.New(),
	}
}

// NewRegistry builds a registry holding every built-in parser.
func NewRegistry() *provider.Registry {
	return provider.NewRegistry(Parsers()...)
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns a shared registry of the built-in parsers. Registries are
// read-only after construction, so one instance serves every caller.
func Default() *provider.Registry {
	return defaultRegistry()
}
