// Package musixmatch registers Musixmatch as a provider. No URL pattern is
// known for it, so it never matches and never builds URLs.
package musixmatch

import "github.com/sydlexius/crossref/internal/provider"

// Parser implements provider.Parser for Musixmatch.
type Parser struct{}

// New creates a Musixmatch parser.
func New() *Parser { return &Parser{} }

// Name returns the provider identifier.
func (p *Parser) Name() provider.ProviderName { return provider.NameMusixmatch }

// ParseURL always returns nil.
func (p *Parser) ParseURL(string) *provider.URLData { return nil }

// CreateURL always returns "".
func (p *Parser) CreateURL(provider.URLType, string) string { return "" }
