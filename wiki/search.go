package wiki

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/olgasafonova/wikibase-mcp-server/internal/mwapi"
)

// searchResponse is the expected shape of a list=search query.
type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

// Search performs a full-text search and returns matching page titles in
// upstream-provided order.
func (c *Client) Search(ctx context.Context, args SearchArgs) (SearchResult, error) {
	if args.Query == "" {
		return SearchResult{}, &ValidationError{Field: "query", Message: "search query is required"}
	}

	limit := normalizeLimit(args.Limit, DefaultSearchLimit, MaxSearchLimit)

	query := url.Values{}
	query.Set("action", "query")
	query.Set("list", "search")
	query.Set("srsearch", args.Query)
	query.Set("srlimit", strconv.Itoa(limit))

	resp, err := c.api.Get(ctx, c.baseURL, "search", query)
	if err != nil {
		return SearchResult{}, fmt.Errorf("failed to search: %w", err)
	}
	if !resp.OK() {
		return SearchResult{}, &mwapi.UpstreamError{Op: "search", StatusCode: resp.StatusCode, Body: resp.Snippet()}
	}

	var decoded searchResponse
	if err := resp.Decode(&decoded); err != nil {
		return SearchResult{}, fmt.Errorf("failed to parse search response: %w", err)
	}

	titles := make([]string, 0, len(decoded.Query.Search))
	for _, hit := range decoded.Query.Search {
		titles = append(titles, hit.Title)
	}

	return SearchResult{
		Query:  args.Query,
		Titles: titles,
		Count:  len(titles),
	}, nil
}
