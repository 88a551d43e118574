package wiki

import (
	"context"
	"fmt"
	"net/url"

	"github.com/olgasafonova/wikibase-mcp-server/internal/mwapi"
)

// pageQueryResponse is the expected shape of an action=query page lookup.
// Pages arrive as a map keyed by numeric page id (or "-1" for misses).
type pageQueryResponse struct {
	Query struct {
		Pages map[string]pageEntry `json:"pages"`
	} `json:"query"`
}

type pageEntry struct {
	PageID       int                `json:"pageid"`
	Title        string             `json:"title"`
	Missing      *string            `json:"missing"`
	Touched      string             `json:"touched"`
	Revisions    []revisionEntry    `json:"revisions"`
	Contributors []contributorEntry `json:"contributors"`
}

type revisionEntry struct {
	Content string `json:"*"`
}

type contributorEntry struct {
	Name string `json:"name"`
}

// firstPage returns the single page entry of a titles= query. The API keys
// pages by page id, so the entry is reached by taking the map's first value.
func (r *pageQueryResponse) firstPage() (pageEntry, bool) {
	for _, page := range r.Query.Pages {
		return page, true
	}
	return pageEntry{}, false
}

// GetPage retrieves the raw wikitext of a page's latest revision, byte for
// byte as the upstream stores it.
func (c *Client) GetPage(ctx context.Context, args GetPageArgs) (PageContent, error) {
	if args.Title == "" {
		return PageContent{}, &ValidationError{Field: "title", Message: "page title is required"}
	}

	query := url.Values{}
	query.Set("action", "query")
	query.Set("prop", "revisions")
	query.Set("rvprop", "content")
	query.Set("titles", args.Title)

	resp, err := c.api.Get(ctx, c.baseURL, "get page", query)
	if err != nil {
		return PageContent{}, fmt.Errorf("failed to fetch page: %w", err)
	}
	if !resp.OK() {
		return PageContent{}, &mwapi.UpstreamError{Op: "get page", StatusCode: resp.StatusCode, Body: resp.Snippet()}
	}

	var decoded pageQueryResponse
	if err := resp.Decode(&decoded); err != nil {
		return PageContent{}, fmt.Errorf("failed to parse page response: %w", err)
	}

	page, ok := decoded.firstPage()
	if !ok {
		return PageContent{}, &PageNotFoundError{Title: args.Title, Reason: "no pages in response"}
	}
	if page.Missing != nil {
		return PageContent{}, &PageNotFoundError{Title: args.Title}
	}
	if len(page.Revisions) == 0 {
		return PageContent{}, &PageNotFoundError{Title: args.Title, Reason: "page has no revisions"}
	}

	title := page.Title
	if title == "" {
		title = args.Title
	}

	return PageContent{
		Title:   title,
		PageID:  page.PageID,
		Content: page.Revisions[0].Content,
	}, nil
}

// GetPageInfo retrieves page metadata: id, last-touched timestamp, and the
// contributor name list.
func (c *Client) GetPageInfo(ctx context.Context, args PageInfoArgs) (PageInfo, error) {
	if args.Title == "" {
		return PageInfo{}, &ValidationError{Field: "title", Message: "page title is required"}
	}

	query := url.Values{}
	query.Set("action", "query")
	query.Set("prop", "info|contributors")
	query.Set("titles", args.Title)

	resp, err := c.api.Get(ctx, c.baseURL, "get page info", query)
	if err != nil {
		return PageInfo{}, fmt.Errorf("failed to fetch page info: %w", err)
	}
	if !resp.OK() {
		return PageInfo{}, &mwapi.UpstreamError{Op: "get page info", StatusCode: resp.StatusCode, Body: resp.Snippet()}
	}

	var decoded pageQueryResponse
	if err := resp.Decode(&decoded); err != nil {
		return PageInfo{}, fmt.Errorf("failed to parse page info response: %w", err)
	}

	page, ok := decoded.firstPage()
	if !ok {
		return PageInfo{}, &PageNotFoundError{Title: args.Title, Reason: "no pages in response"}
	}
	if page.Missing != nil {
		return PageInfo{}, &PageNotFoundError{Title: args.Title}
	}

	title := page.Title
	if title == "" {
		title = args.Title
	}

	contributors := make([]string, 0, len(page.Contributors))
	for _, contributor := range page.Contributors {
		if contributor.Name != "" {
			contributors = append(contributors, contributor.Name)
		}
	}

	return PageInfo{
		Title:        title,
		PageID:       page.PageID,
		Touched:      page.Touched,
		Contributors: contributors,
	}, nil
}
