package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sydlexius/crossref/internal/catalog"
	"github.com/sydlexius/crossref/internal/database"
	"github.com/sydlexius/crossref/internal/issue"
	"github.com/sydlexius/crossref/internal/settings"
)

func str(s string) *string { return &s }

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			ID:           "1",
			Name:         "Midnights",
			Status:       catalog.StatusGreen,
			ReleaseDate:  str("2022-10-21"),
			AlbumArtists: []catalog.PartialArtist{{Name: "Taylor Swift"}},
			Tracks:       []catalog.Track{{Number: 3, Name: "Anti-Hero"}},
		},
		{
			ID:           "2",
			Name:         "Folklore",
			Status:       catalog.StatusRed,
			ReleaseDate:  str("2020-07-24"),
			AlbumArtists: []catalog.PartialArtist{{Name: "Taylor Swift"}},
			AlbumIssues:  []issue.ID{issue.NoUPC},
		},
		{
			ID:           "3",
			Name:         "Now 100",
			Status:       catalog.StatusGreen,
			ReleaseDate:  str("2018-07-20"),
			AlbumArtists: []catalog.PartialArtist{{Name: "Various Artists"}},
		},
		{
			ID:           "4",
			Name:         "Discovery",
			Status:       catalog.StatusBlue,
			ReleaseDate:  str("2001-03-12"),
			AlbumArtists: []catalog.PartialArtist{{Name: "Daft Punk"}},
		},
	}
}

type testEnv struct {
	handler  http.Handler
	settings *settings.Service
	store    *catalog.Store
}

func newTestEnv(t *testing.T, deps RouterDeps) *testEnv {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	svc := settings.NewService(db)
	store := catalog.NewStore(testEntries())
	deps.Settings = svc
	deps.Catalog = store
	deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return &testEnv{
		handler:  NewRouter(deps).Handler(ctx),
		settings: svc,
		store:    store,
	}
}

func (e *testEnv) do(t *testing.T, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding %q: %v", w.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, want, w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, RouterDeps{})
	w := env.do(t, http.MethodGet, "/api/v1/health", nil)
	expectStatus(t, w, http.StatusOK)

	body := decode[map[string]any](t, w)
	if body["status"] != "ok" {
		t.Errorf("status = %v", body["status"])
	}
	if body["catalog"] != float64(4) {
		t.Errorf("catalog = %v, want 4", body["catalog"])
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers")
	}
}

func TestBasePath(t *testing.T) {
	env := newTestEnv(t, RouterDeps{BasePath: "/crossref"})
	expectStatus(t, env.do(t, http.MethodGet, "/crossref/api/v1/health", nil), http.StatusOK)
	expectStatus(t, env.do(t, http.MethodGet, "/api/v1/health", nil), http.StatusNotFound)
}

func TestRateLimit(t *testing.T) {
	env := newTestEnv(t, RouterDeps{RateLimit: 0.01, RateBurst: 1})
	expectStatus(t, env.do(t, http.MethodGet, "/api/v1/health", nil), http.StatusOK)
	expectStatus(t, env.do(t, http.MethodGet, "/api/v1/health", nil), http.StatusTooManyRequests)
}

func TestListIssues(t *testing.T) {
	env := newTestEnv(t, RouterDeps{})
	w := env.do(t, http.MethodGet, "/api/v1/issues", nil)
	expectStatus(t, w, http.StatusOK)
	body := decode[map[string][]issue.Definition](t, w)
	if len(body["album"]) != len(issue.AlbumIssues()) || len(body["track"]) != len(issue.TrackIssues()) {
		t.Errorf("got %d album and %d track issues", len(body["album"]), len(body["track"]))
	}
}

func TestCatalogReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`[{"id":"x","name":"Only","status":"green"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	env := newTestEnv(t, RouterDeps{CatalogPath: path})

	w := env.do(t, http.MethodPost, "/api/v1/catalog/reload", nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[map[string]any](t, w)["entries"]; got != float64(1) {
		t.Errorf("entries = %v, want 1", got)
	}
	if len(env.store.Snapshot()) != 1 {
		t.Error("store was not reloaded")
	}

	if err := os.WriteFile(path, []byte("nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	expectStatus(t, env.do(t, http.MethodPost, "/api/v1/catalog/reload", nil), http.StatusInternalServerError)
	if len(env.store.Snapshot()) != 1 {
		t.Error("failed reload should keep the snapshot")
	}
}

func TestCatalogReload_NoPath(t *testing.T) {
	env := newTestEnv(t, RouterDeps{})
	expectStatus(t, env.do(t, http.MethodPost, "/api/v1/catalog/reload", nil), http.StatusConflict)
}

func query(pairs ...string) string {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Add(pairs[i], pairs[i+1])
	}
	return "?" + v.Encode()
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
