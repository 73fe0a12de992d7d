// Package seeder describes external cross-reference tools that take a
// provider URL as a search seed, and selects the ones usable for a given set
// of providers.
package seeder

import (
	"net/url"
	"slices"
	"strings"

	"github.com/sydlexius/crossref/internal/provider"
)

// Namespace uniquely identifies a seeder.
type Namespace string

// Known seeders.
const (
	NamespaceHarmony  Namespace = "harmony"
	NamespaceATisket  Namespace = "atisket"
	NamespaceISRCHunt Namespace = "isrchunt"
)

// Seeder is a cross-reference lookup service.
type Seeder struct {
	Namespace   Namespace               `json:"namespace"`
	DisplayName string                  `json:"display_name"`
	Providers   []provider.ProviderName `json:"providers"`
	IsDefault   bool                    `json:"is_default"`

	// buildURL formats the query for the external tool. upc may be empty.
	buildURL func(sourceURL, upc string) string
}

// BuildURL formats the lookup URL for sourceURL. The UPC is included only by
// seeders that accept one, and only when non-empty.
func (s Seeder) BuildURL(sourceURL, upc string) string {
	if s.buildURL == nil {
		return ""
	}
	return s.buildURL(sourceURL, strings.TrimSpace(upc))
}

// Supports reports whether the seeder can consume data from at least one of
// the given providers. With no providers it reports true.
func (s Seeder) Supports(providers ...provider.ProviderName) bool {
	if len(providers) == 0 {
		return true
	}
	for _, p := range providers {
		if slices.Contains(s.Providers, p) {
			return true
		}
	}
	return false
}

// Catalog is an immutable, ordered list of seeders.
type Catalog struct {
	seeders []Seeder
}

// NewCatalog creates a catalog holding the given seeders in order.
func NewCatalog(seeders ...Seeder) *Catalog {
	c := &Catalog{seeders: make([]Seeder, len(seeders))}
	for i, s := range seeders {
		s.Providers = slices.Clone(s.Providers)
		c.seeders[i] = s
	}
	return c
}

// Default returns the catalog of built-in seeders.
func Default() *Catalog {
	return NewCatalog(builtinSeeders()...)
}

// Get returns the named seeder. It returns nil when the seeder is unknown and
// also when it exists but shares no provider with the given set, so nil means
// "unusable here" rather than only "not found".
func (c *Catalog) Get(ns Namespace, providers ...provider.ProviderName) *Seeder {
	for _, s := range c.seeders {
		if s.Namespace != ns {
			continue
		}
		if !s.Supports(providers...) {
			return nil
		}
		out := s
		out.Providers = slices.Clone(s.Providers)
		return &out
	}
	return nil
}

// All returns every seeder compatible with the given providers, or all
// seeders when none are given.
func (c *Catalog) All(providers ...provider.ProviderName) []Seeder {
	return c.filter(false, providers)
}

// Defaults returns the default-flagged seeders compatible with the given
// providers, or all default seeders when none are given.
func (c *Catalog) Defaults(providers ...provider.ProviderName) []Seeder {
	return c.filter(true, providers)
}

// DefaultNamespaces returns the namespaces of Defaults.
func (c *Catalog) DefaultNamespaces(providers ...provider.ProviderName) []Namespace {
	defaults := c.Defaults(providers...)
	out := make([]Namespace, len(defaults))
	for i, s := range defaults {
		out[i] = s.Namespace
	}
	return out
}

func (c *Catalog) filter(onlyDefault bool, providers []provider.ProviderName) []Seeder {
	out := make([]Seeder, 0, len(c.seeders))
	for _, s := range c.seeders {
		if onlyDefault && !s.IsDefault {
			continue
		}
		if !s.Supports(providers...) {
			continue
		}
		s.Providers = slices.Clone(s.Providers)
		out = append(out, s)
	}
	return out
}

func builtinSeeders() []Seeder {
	return []Seeder{
		{
			Namespace:   NamespaceHarmony,
			DisplayName: "Harmony",
			Providers: []provider.ProviderName{
				provider.NameAppleMusic,
				provider.NameBandcamp,
				provider.NameDeezer,
				provider.NameMusicBrainz,
				provider.NameSoundCloud,
				provider.NameSpotify,
				provider.NameTidal,
			},
			IsDefault: true,
			buildURL: func(sourceURL, upc string) string {
				s := "https://harmony.pulsewidth.org.uk/release?url=" + url.QueryEscape(sourceURL) + "&category=preferred"
				if upc != "" {
					s += "&gtin=" + url.QueryEscape(upc)
				}
				return s
			},
		},
		{
			Namespace:   NamespaceATisket,
			DisplayName: "a-tisket",
			Providers: []provider.ProviderName{
				provider.NameAppleMusic,
				provider.NameDeezer,
				provider.NameSpotify,
			},
			IsDefault: true,
			buildURL: func(sourceURL, upc string) string {
				s := "https://atisket.pulsewidth.org.uk/?url=" + url.QueryEscape(sourceURL)
				if upc != "" {
					s += "&upc=" + url.QueryEscape(upc)
				}
				return s
			},
		},
		{
			Namespace:   NamespaceISRCHunt,
			DisplayName: "ISRC Hunt",
			Providers:   []provider.ProviderName{provider.NameSpotify},
			buildURL: func(sourceURL, _ string) string {
				return "https://isrchunt.com/spotify/importisrc?playlist=" + url.QueryEscape(sourceURL)
			},
		},
	}
}
