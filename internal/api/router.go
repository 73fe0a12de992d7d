package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sydlexius/crossref/internal/api/middleware"
	"github.com/sydlexius/crossref/internal/catalog"
	"github.com/sydlexius/crossref/internal/provider"
	"github.com/sydlexius/crossref/internal/provider/builtin"
	"github.com/sydlexius/crossref/internal/seeder"
	"github.com/sydlexius/crossref/internal/settings"
)

// RouterDeps bundles all dependencies needed by the HTTP router.
type RouterDeps struct {
	Registry    *provider.Registry
	Seeders     *seeder.Catalog
	Catalog     *catalog.Store
	CatalogPath string
	Settings    *settings.Service
	Logger      *slog.Logger
	BasePath    string
	// RateLimit is requests per second per client; zero disables limiting.
	RateLimit float64
	RateBurst int
}

// Router sets up all HTTP routes for the application.
type Router struct {
	registry    *provider.Registry
	seeders     *seeder.Catalog
	catalog     *catalog.Store
	catalogPath string
	settings    *settings.Service
	logger      *slog.Logger
	basePath    string
	rateLimit   float64
	rateBurst   int
}

// NewRouter creates a new Router with all routes configured.
func NewRouter(deps RouterDeps) *Router {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	store := deps.Catalog
	if store == nil {
		store = catalog.NewStore(nil)
	}
	registry := deps.Registry
	if registry == nil {
		registry = builtin.Default()
	}
	seeders := deps.Seeders
	if seeders == nil {
		seeders = seeder.Default()
	}
	return &Router{
		registry:    registry,
		seeders:     seeders,
		catalog:     store,
		catalogPath: deps.CatalogPath,
		settings:    deps.Settings,
		logger:      logger.With("component", "api"),
		basePath:    deps.BasePath,
		rateLimit:   deps.RateLimit,
		rateBurst:   deps.RateBurst,
	}
}

// Handler returns the fully configured HTTP handler with middleware applied.
// ctx bounds background work owned by the middleware.
func (r *Router) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	bp := r.basePath

	mux.HandleFunc("GET "+bp+"/api/v1/health", r.handleHealth)

	// Provider routes
	mux.HandleFunc("GET "+bp+"/api/v1/providers", r.handleListProviders)
	mux.HandleFunc("GET "+bp+"/api/v1/providers/{name}/url", r.handleProviderURL)
	mux.HandleFunc("GET "+bp+"/api/v1/providers/{name}/lookup", r.handleProviderLookup)
	mux.HandleFunc("GET "+bp+"/api/v1/resolve", r.handleResolve)

	// Seeder routes
	mux.HandleFunc("GET "+bp+"/api/v1/seeders", r.handleListSeeders)
	mux.HandleFunc("GET "+bp+"/api/v1/seeders/{namespace}/url", r.handleSeederURL)

	// Catalog routes
	mux.HandleFunc("GET "+bp+"/api/v1/catalog", r.handleCatalog)
	mux.HandleFunc("GET "+bp+"/api/v1/catalog/options", r.handleCatalogOptions)
	mux.HandleFunc("POST "+bp+"/api/v1/catalog/reload", r.handleCatalogReload)
	mux.HandleFunc("GET "+bp+"/api/v1/issues", r.handleListIssues)

	// Settings routes
	mux.HandleFunc("GET "+bp+"/api/v1/settings", r.handleGetSettings)
	mux.HandleFunc("PUT "+bp+"/api/v1/settings", r.handleUpdateSettings)
	mux.HandleFunc("DELETE "+bp+"/api/v1/settings", r.handleResetSettings)

	var h http.Handler = mux
	if r.rateLimit > 0 {
		h = middleware.NewRateLimiter(ctx, r.rateLimit, r.rateBurst).Middleware(h)
	}
	h = middleware.SecurityHeaders(h)
	h = middleware.Logging(r.logger)(h)
	return middleware.RequestID(h)
}
