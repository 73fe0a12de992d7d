package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sydlexius/crossref/internal/seeder"
)

// handleListSeeders lists seeders, optionally narrowed to those consuming at
// least one of the given providers and to default seeders only.
func (r *Router) handleListSeeders(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	providers, err := parseProviders(q["provider"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	onlyDefault, _ := strconv.ParseBool(q.Get("default"))
	var list []seeder.Seeder
	if onlyDefault {
		list = r.seeders.Defaults(providers...)
	} else {
		list = r.seeders.All(providers...)
	}
	if list == nil {
		list = []seeder.Seeder{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"seeders": list})
}

// handleSeederURL builds the lookup link for a source URL. It responds 404
// when the seeder is unknown or cannot consume any of the given providers.
func (r *Router) handleSeederURL(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	source := strings.TrimSpace(q.Get("url"))
	if source == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	providers, err := parseProviders(q["provider"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// Infer the provider from the source URL when the caller gave none.
	if len(providers) == 0 {
		if info := r.registry.GetURLInfo(source); info != nil {
			providers = append(providers, info.Provider)
		}
	}

	ns := seeder.Namespace(req.PathValue("namespace"))
	s := r.seeders.Get(ns, providers...)
	if s == nil {
		writeError(w, http.StatusNotFound, "no usable seeder "+strconv.Quote(string(ns)))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"namespace": string(s.Namespace),
		"url":       s.BuildURL(source, q.Get("upc")),
	})
}
