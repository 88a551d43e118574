package wiki

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/olgasafonova/wikibase-mcp-server/internal/mwapi"
)

func TestGetPage_Success(t *testing.T) {
	const content = "== Heading ==\n\nSome ''wikitext'' with [[links]] and trailing spaces.  \n"

	var gotTitles string
	server := mockMediaWikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotTitles = r.FormValue("titles")
		writeJSON(t, w, map[string]any{
			"query": map[string]any{
				"pages": map[string]any{
					"42": map[string]any{
						"pageid": float64(42),
						"title":  "Test Page",
						"revisions": []any{
							map[string]any{"*": content},
						},
					},
				},
			},
		})
	})
	defer server.Close()

	client := newTestClient(t, server)

	result, err := client.GetPage(context.Background(), GetPageArgs{Title: "Test Page"})
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}

	if gotTitles != "Test Page" {
		t.Errorf("titles = %q, want %q", gotTitles, "Test Page")
	}
	if result.PageID != 42 {
		t.Errorf("PageID = %d, want 42", result.PageID)
	}
	// Content must come back byte for byte, whitespace included.
	if result.Content != content {
		t.Errorf("Content = %q, want %q", result.Content, content)
	}
}

func TestGetPage_Missing(t *testing.T) {
	server := mockMediaWikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"query": map[string]any{
				"pages": map[string]any{
					"-1": map[string]any{
						"title":   "No Such Page",
						"missing": "",
					},
				},
			},
		})
	})
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.GetPage(context.Background(), GetPageArgs{Title: "No Such Page"})
	if err == nil {
		t.Fatal("expected error for missing page")
	}
	var nf *PageNotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("error = %T, want *PageNotFoundError", err)
	}
}

func TestGetPage_NoRevisions(t *testing.T) {
	server := mockMediaWikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"query": map[string]any{
				"pages": map[string]any{
					"42": map[string]any{
						"pageid": float64(42),
						"title":  "Empty Page",
					},
				},
			},
		})
	})
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.GetPage(context.Background(), GetPageArgs{Title: "Empty Page"})
	if err == nil {
		t.Fatal("expected error for page without revisions")
	}
	var nf *PageNotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("error = %T, want *PageNotFoundError", err)
	}
}

func TestGetPage_EmptyTitle(t *testing.T) {
	client := newTestClient(t, nil)

	_, err := client.GetPage(context.Background(), GetPageArgs{Title: ""})
	if err == nil {
		t.Fatal("expected error for empty title")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error = %T, want *ValidationError", err)
	}
}

func TestGetPage_UpstreamFailure(t *testing.T) {
	server := mockMediaWikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database locked", http.StatusServiceUnavailable)
	})
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.GetPage(context.Background(), GetPageArgs{Title: "Test Page"})
	if err == nil {
		t.Fatal("expected error for upstream failure")
	}
	var ue *mwapi.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %T, want *mwapi.UpstreamError", err)
	}
	if ue.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want 503", ue.StatusCode)
	}
}

func TestGetPageInfo_Success(t *testing.T) {
	server := mockMediaWikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"query": map[string]any{
				"pages": map[string]any{
					"7": map[string]any{
						"pageid":  float64(7),
						"title":   "Test Page",
						"touched": "2026-08-20T12:00:00Z",
						"contributors": []any{
							map[string]any{"name": "Alice"},
							map[string]any{"name": "Bob"},
						},
					},
				},
			},
		})
	})
	defer server.Close()

	client := newTestClient(t, server)

	info, err := client.GetPageInfo(context.Background(), PageInfoArgs{Title: "Test Page"})
	if err != nil {
		t.Fatalf("GetPageInfo failed: %v", err)
	}

	if info.PageID != 7 {
		t.Errorf("PageID = %d, want 7", info.PageID)
	}
	if info.Touched != "2026-08-20T12:00:00Z" {
		t.Errorf("Touched = %q", info.Touched)
	}
	if len(info.Contributors) != 2 || info.Contributors[0] != "Alice" || info.Contributors[1] != "Bob" {
		t.Errorf("Contributors = %v, want [Alice Bob]", info.Contributors)
	}
}

func TestGetPageInfo_Missing(t *testing.T) {
	server := mockMediaWikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"query": map[string]any{
				"pages": map[string]any{
					"-1": map[string]any{
						"title":   "No Such Page",
						"missing": "",
					},
				},
			},
		})
	})
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.GetPageInfo(context.Background(), PageInfoArgs{Title: "No Such Page"})
	if err == nil {
		t.Fatal("expected error for missing page")
	}
	var nf *PageNotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("error = %T, want *PageNotFoundError", err)
	}
}
