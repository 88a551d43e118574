package wiki

import (
	"context"
	"fmt"
	"net/url"

	"github.com/olgasafonova/wikibase-mcp-server/internal/mwapi"
	"github.com/olgasafonova/wikibase-mcp-server/metrics"
)

// editResponse is the expected shape of an action=edit reply.
type editResponse struct {
	Edit struct {
		Result string `json:"result"`
	} `json:"edit"`
}

// deleteResponse is the expected shape of an action=delete reply.
type deleteResponse struct {
	Delete struct {
		Result string `json:"result"`
	} `json:"delete"`
}

// EditPage updates an existing page's content. A fresh CSRF token is fetched
// immediately before the write and embedded in it.
func (c *Client) EditPage(ctx context.Context, args EditPageArgs) (EditResult, error) {
	return c.submitEdit(ctx, "edit", args.Title, args.Content, args.Summary, false)
}

// CreatePage creates a new page. It uses the same upstream action as
// EditPage but refuses to overwrite an existing page.
func (c *Client) CreatePage(ctx context.Context, args CreatePageArgs) (EditResult, error) {
	return c.submitEdit(ctx, "create", args.Title, args.Content, args.Summary, true)
}

func (c *Client) submitEdit(ctx context.Context, op, title, content, summary string, createOnly bool) (EditResult, error) {
	if title == "" {
		return EditResult{}, &ValidationError{Field: "title", Message: "page title is required"}
	}
	if content == "" {
		return EditResult{}, &ValidationError{Field: "content", Message: "page content is required"}
	}

	token, err := c.api.FetchToken(ctx, c.baseURL, mwapi.TokenCSRF, op)
	if err != nil {
		return EditResult{}, err
	}

	query := url.Values{}
	query.Set("action", "edit")

	form := url.Values{}
	form.Set("title", title)
	form.Set("text", content)
	form.Set("summary", summary)
	form.Set("token", token)
	if createOnly {
		form.Set("createonly", "1")
	}

	resp, err := c.api.PostForm(ctx, c.baseURL, op, query, form)
	if err != nil {
		return EditResult{}, fmt.Errorf("failed to %s page: %w", op, err)
	}
	if !resp.OK() {
		return EditResult{}, &mwapi.UpstreamError{Op: op + " page", StatusCode: resp.StatusCode, Body: resp.Snippet()}
	}

	var decoded editResponse
	if err := resp.Decode(&decoded); err != nil {
		return EditResult{}, fmt.Errorf("failed to parse %s response: %w", op, err)
	}

	// Success is strictly the exact literal; any other discriminator is a
	// non-success outcome, not an error.
	if decoded.Edit.Result != "Success" {
		metrics.RecordEdit(op, false)
		return EditResult{
			Success: false,
			Title:   title,
			Message: fmt.Sprintf("%s failed: %s", op, decoded.Edit.Result),
		}, nil
	}

	metrics.RecordEdit(op, true)
	c.logger.Info("Page write succeeded", "operation", op, "title", title)

	message := "Page edited successfully"
	if op == "create" {
		message = "Page created successfully"
	}

	return EditResult{
		Success: true,
		Title:   title,
		Message: message,
	}, nil
}

// DeletePage deletes a page, fetching a fresh CSRF token first.
func (c *Client) DeletePage(ctx context.Context, args DeletePageArgs) (DeleteResult, error) {
	if args.Title == "" {
		return DeleteResult{}, &ValidationError{Field: "title", Message: "page title is required"}
	}

	token, err := c.api.FetchToken(ctx, c.baseURL, mwapi.TokenCSRF, "delete")
	if err != nil {
		return DeleteResult{}, err
	}

	query := url.Values{}
	query.Set("action", "delete")

	form := url.Values{}
	form.Set("title", args.Title)
	form.Set("reason", args.Reason)
	form.Set("token", token)

	resp, err := c.api.PostForm(ctx, c.baseURL, "delete", query, form)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to delete page: %w", err)
	}
	if !resp.OK() {
		return DeleteResult{}, &mwapi.UpstreamError{Op: "delete page", StatusCode: resp.StatusCode, Body: resp.Snippet()}
	}

	var decoded deleteResponse
	if err := resp.Decode(&decoded); err != nil {
		return DeleteResult{}, fmt.Errorf("failed to parse delete response: %w", err)
	}

	if decoded.Delete.Result != "Success" {
		metrics.RecordEdit("delete", false)
		return DeleteResult{
			Success: false,
			Title:   args.Title,
			Message: fmt.Sprintf("delete failed: %s", decoded.Delete.Result),
		}, nil
	}

	metrics.RecordEdit("delete", true)
	c.logger.Info("Page deleted", "title", args.Title)

	return DeleteResult{
		Success: true,
		Title:   args.Title,
		Message: "Page deleted successfully",
	}, nil
}
