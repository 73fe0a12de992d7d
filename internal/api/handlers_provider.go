package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sydlexius/crossref/internal/provider"
	"github.com/sydlexius/crossref/internal/seeder"
)

type providerSummary struct {
	Name        provider.ProviderName `json:"name"`
	DisplayName string                `json:"display_name"`
	Regional    bool                  `json:"regional"`
	Barcode     bool                  `json:"barcode_lookup"`
}

type seederLink struct {
	Namespace   seeder.Namespace `json:"namespace"`
	DisplayName string           `json:"display_name"`
	URL         string           `json:"url"`
}

// handleListProviders returns every registered provider in declared order.
func (r *Router) handleListProviders(w http.ResponseWriter, req *http.Request) {
	parsers := r.registry.All()
	out := make([]providerSummary, 0, len(parsers))
	for _, p := range parsers {
		_, regional := p.(provider.RegionalURLCreator)
		_, barcode := p.(provider.BarcodeLookup)
		out = append(out, providerSummary{
			Name:        p.Name(),
			DisplayName: p.Name().DisplayName(),
			Regional:    regional,
			Barcode:     barcode,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"providers": out})
}

// handleResolve identifies the provider, entity type and ID behind a URL and
// lists the default seeder links that can consume it.
func (r *Router) handleResolve(w http.ResponseWriter, req *http.Request) {
	raw := strings.TrimSpace(req.URL.Query().Get("url"))
	if raw == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	info := r.registry.GetURLInfo(raw)
	matches := r.registry.Resolve(raw)
	if matches == nil {
		matches = []provider.URLInfo{}
	}

	links := []seederLink{}
	if info != nil {
		for _, s := range r.seeders.Defaults(info.Provider) {
			if u := s.BuildURL(raw, req.URL.Query().Get("upc")); u != "" {
				links = append(links, seederLink{Namespace: s.Namespace, DisplayName: s.DisplayName, URL: u})
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"url":     raw,
		"info":    info,
		"matches": matches,
		"seeders": links,
	})
}

// handleProviderURL builds a canonical URL from a type and ID.
func (r *Router) handleProviderURL(w http.ResponseWriter, req *http.Request) {
	name, ok := r.pathProvider(w, req)
	if !ok {
		return
	}
	q := req.URL.Query()
	t := provider.URLType(q.Get("type"))
	id := strings.TrimSpace(q.Get("id"))
	if !provider.ValidURLType(t) {
		writeError(w, http.StatusBadRequest, "type must be one of artist, album, track")
		return
	}
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	u := r.registry.CreateURL(name, t, id, q.Get("country"))
	if u == "" {
		writeError(w, http.StatusUnprocessableEntity, "provider cannot build a URL for this type and id")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"provider": name,
		"type":     t,
		"id":       id,
		"url":      u,
	})
}

// handleProviderLookup returns a search URL for a UPC or ISRC on providers
// that support barcode lookups.
func (r *Router) handleProviderLookup(w http.ResponseWriter, req *http.Request) {
	name, ok := r.pathProvider(w, req)
	if !ok {
		return
	}
	lookup, ok := r.registry.Get(name).(provider.BarcodeLookup)
	if !ok {
		writeError(w, http.StatusNotFound, "provider does not support barcode lookups")
		return
	}

	q := req.URL.Query()
	var u string
	switch {
	case q.Get("upc") != "":
		u = lookup.UPCLookupURL(q.Get("upc"))
	case q.Get("isrc") != "":
		u = lookup.ISRCLookupURL(q.Get("isrc"))
	default:
		writeError(w, http.StatusBadRequest, "upc or isrc is required")
		return
	}
	if u == "" {
		writeError(w, http.StatusBadRequest, "invalid code")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": u})
}

// pathProvider reads {name} and writes a 404 when no such provider is
// registered.
func (r *Router) pathProvider(w http.ResponseWriter, req *http.Request) (provider.ProviderName, bool) {
	name := provider.ProviderName(req.PathValue("name"))
	if r.registry.Get(name) == nil {
		writeError(w, http.StatusNotFound, (&provider.ErrUnknownProvider{Provider: name}).Error())
		return "", false
	}
	return name, true
}

// parseProviders reads repeated or comma-separated "provider" parameters.
func parseProviders(values []string) ([]provider.ProviderName, error) {
	var out []provider.ProviderName
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			name := provider.ProviderName(part)
			if !name.Valid() {
				return nil, &provider.ErrUnknownProvider{Provider: name}
			}
			out = append(out, name)
		}
	}
	return out, nil
}

func isUnknownProvider(err error) bool {
	var target *provider.ErrUnknownProvider
	return errors.As(err, &target)
}
