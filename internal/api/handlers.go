package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sydlexius/crossref/internal/version"
)

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	resp := map[string]any{
		"status":  "ok",
		"version": version.Version,
		"commit":  version.Commit,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"catalog": len(r.catalog.Snapshot()),
	}
	if loaded := r.catalog.LoadedAt(); !loaded.IsZero() {
		resp["catalog_loaded_at"] = loaded.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}
