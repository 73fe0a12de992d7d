package api

import (
	"encoding/json"
	"net/http"

	"github.com/sydlexius/crossref/internal/catalog"
	"github.com/sydlexius/crossref/internal/provider"
)

type settingsResponse struct {
	Filters  catalog.FilterData    `json:"filters"`
	Stored   bool                  `json:"stored"`
	Provider provider.ProviderName `json:"provider"`
}

func (r *Router) handleGetSettings(w http.ResponseWriter, req *http.Request) {
	if r.settings == nil {
		writeError(w, http.StatusServiceUnavailable, "settings store not configured")
		return
	}
	r.writeSettings(w, req)
}

// handleUpdateSettings applies a partial update: omitted fields keep their
// stored values.
func (r *Router) handleUpdateSettings(w http.ResponseWriter, req *http.Request) {
	if r.settings == nil {
		writeError(w, http.StatusServiceUnavailable, "settings store not configured")
		return
	}

	var body struct {
		Filters  *catalog.FilterData    `json:"filters"`
		Provider *provider.ProviderName `json:"provider"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, 64<<10)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := req.Context()
	if body.Provider != nil {
		if err := r.settings.SetLastProvider(ctx, *body.Provider); err != nil {
			if isUnknownProvider(err) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			r.logger.Error("storing last provider", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save settings")
			return
		}
	}
	if body.Filters != nil {
		if err := r.settings.SetFilterData(ctx, *body.Filters); err != nil {
			r.logger.Error("storing filters", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save settings")
			return
		}
	}
	r.writeSettings(w, req)
}

func (r *Router) handleResetSettings(w http.ResponseWriter, req *http.Request) {
	if r.settings == nil {
		writeError(w, http.StatusServiceUnavailable, "settings store not configured")
		return
	}
	if err := r.settings.Reset(req.Context()); err != nil {
		r.logger.Error("resetting settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to reset settings")
		return
	}
	r.writeSettings(w, req)
}

func (r *Router) writeSettings(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	fd, stored, err := r.settings.GetFilterData(ctx)
	if err != nil {
		r.logger.Warn("reading stored filters", "error", err)
	}
	name, err := r.settings.GetLastProvider(ctx)
	if err != nil {
		r.logger.Error("reading last provider", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read settings")
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{Filters: fd, Stored: stored, Provider: name})
}
