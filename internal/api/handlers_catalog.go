package api

import (
	"net/http"
	"time"

	"github.com/sydlexius/crossref/internal/catalog"
	"github.com/sydlexius/crossref/internal/issue"
)

// handleCatalog searches, filters and sorts the loaded catalog. Without
// explicit filter parameters the stored display settings apply.
func (r *Router) handleCatalog(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	fd, explicit := catalog.ParseFilterData(q)
	if !explicit && r.settings != nil {
		stored, _, err := r.settings.GetFilterData(req.Context())
		if err != nil {
			r.logger.Warn("reading stored filters", "error", err)
		}
		fd = stored
	}

	items := catalog.FilterItems(catalog.SearchItems(r.catalog.Snapshot(), q.Get("q")), fd)
	if items == nil {
		items = []catalog.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":   items,
		"total":   len(items),
		"options": fd,
	})
}

// handleCatalogOptions returns the declared filters and sorts with their
// defaults.
func (r *Router) handleCatalogOptions(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"filters":  catalog.Filters(),
		"sorts":    catalog.Sorters(),
		"defaults": catalog.DefaultOptions(),
	})
}

// handleCatalogReload re-reads the catalog file.
func (r *Router) handleCatalogReload(w http.ResponseWriter, req *http.Request) {
	if r.catalogPath == "" {
		writeError(w, http.StatusConflict, "no catalog file configured")
		return
	}
	n, err := r.catalog.Reload(r.catalogPath)
	if err != nil {
		r.logger.Error("reloading catalog", "path", r.catalogPath, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to reload catalog")
		return
	}
	r.logger.Info("catalog reloaded", "entries", n)
	writeJSON(w, http.StatusOK, map[string]any{
		"entries":   n,
		"loaded_at": r.catalog.LoadedAt().Format(time.RFC3339),
	})
}

// handleListIssues returns the issue taxonomy.
func (r *Router) handleListIssues(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"album": issue.AlbumIssues(),
		"track": issue.TrackIssues(),
	})
}
