package provider

// Registry holds the registered URL parsers in a fixed declared order.
// It is built once and never mutated, so it is safe for concurrent use
// without locking.
type Registry struct {
	order   []Parser
	parsers map[ProviderName]Parser
}

// NewRegistry creates a registry from the given parsers. Registration order
// is the iteration order used by GetURLInfo. A later parser with the same
// name replaces the earlier one in place.
func NewRegistry(parsers ...Parser) *Registry {
	r := &Registry{
		parsers: make(map[ProviderName]Parser, len(parsers)),
	}
	for _, p := range parsers {
		if p == nil {
			continue
		}
		if _, dup := r.parsers[p.Name()]; dup {
			for i, existing := range r.order {
				if existing.Name() == p.Name() {
					r.order[i] = p
				}
			}
		} else {
			r.order = append(r.order, p)
		}
		r.parsers[p.Name()] = p
	}
	return r
}

// Get returns the parser for a provider, or nil if not registered.
func (r *Registry) Get(name ProviderName) Parser {
	return r.parsers[name]
}

// All returns all registered parsers in registration order.
func (r *Registry) All() []Parser {
	out := make([]Parser, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the registered provider names in registration order.
func (r *Registry) Names() []ProviderName {
	names := make([]ProviderName, len(r.order))
	for i, p := range r.order {
		names[i] = p.Name()
	}
	return names
}

// ParseURL matches raw against a single provider's pattern.
func (r *Registry) ParseURL(name ProviderName, raw string) *URLData {
	p := r.Get(name)
	if p == nil {
		return nil
	}
	return p.ParseURL(raw)
}

// CreateURL builds a provider URL. The optional country is honoured by
// providers implementing RegionalURLCreator and ignored by the rest.
// Returns "" for unknown providers or unsupported types.
func (r *Registry) CreateURL(name ProviderName, t URLType, id string, country ...string) string {
	p := r.Get(name)
	if p == nil {
		return ""
	}
	if rc, ok := p.(RegionalURLCreator); ok && len(country) > 0 && country[0] != "" {
		return rc.CreateRegionalURL(t, id, country[0])
	}
	return p.CreateURL(t, id)
}

// GetURLInfo resolves raw against every registered provider. All parsers are
// evaluated; when more than one matches, the last one in registration order
// wins. Returns nil when nothing matches.
func (r *Registry) GetURLInfo(raw string) *URLInfo {
	var info *URLInfo
	for _, p := range r.order {
		data := p.ParseURL(raw)
		if data == nil {
			continue
		}
		info = &URLInfo{Provider: p.Name(), Type: data.Type, ID: data.ID}
	}
	return info
}

// Resolve returns every provider match for raw in registration order.
func (r *Registry) Resolve(raw string) []URLInfo {
	var matches []URLInfo
	for _, p := range r.order {
		if data := p.ParseURL(raw); data != nil {
			matches = append(matches, URLInfo{Provider: p.Name(), Type: data.Type, ID: data.ID})
		}
	}
	return matches
}
