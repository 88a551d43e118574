package wikibase

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/olgasafonova/wikibase-mcp-server/internal/mwapi"
)

// newTestClient creates a wikibase client pointed at a mock server.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	baseURL := "http://unused.invalid"
	if server != nil {
		baseURL = server.URL
	}
	config := &mwapi.Config{
		WikibaseURL: baseURL,
		Timeout:     5 * time.Second,
		UserAgent:   "TestClient/1.0",
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	api := mwapi.NewClient(config, mwapi.NewSession(), logger)
	return NewClient(api, baseURL, logger)
}

// mockWikibaseServer creates a test server that answers token queries itself
// and delegates everything else to handler.
func mockWikibaseServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		if r.FormValue("action") == "query" && r.FormValue("meta") == "tokens" {
			writeJSON(t, w, map[string]any{
				"query": map[string]any{
					"tokens": map[string]any{"csrftoken": "test-csrf-token"},
				},
			})
			return
		}

		handler(w, r)
	}))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}
