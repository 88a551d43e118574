package wikibase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/olgasafonova/wikibase-mcp-server/internal/mwapi"
	"github.com/olgasafonova/wikibase-mcp-server/metrics"
)

// editEntityResponse is the expected shape of a wbeditentity reply.
type editEntityResponse struct {
	Success int `json:"success"`
	Entity  struct {
		ID string `json:"id"`
	} `json:"entity"`
}

// createClaimResponse is the expected shape of a wbcreateclaim reply.
type createClaimResponse struct {
	Success int `json:"success"`
	Claim   struct {
		ID string `json:"id"`
	} `json:"claim"`
}

// EditEntity creates or edits an entity. When args.ID is empty a new entity
// is created and its assigned ID returned. A fresh CSRF token is fetched
// immediately before the write.
func (c *Client) EditEntity(ctx context.Context, args EditEntityArgs) (EditEntityResult, error) {
	if args.Data == "" {
		return EditEntityResult{}, &ValidationError{Field: "data", Message: "entity data is required"}
	}
	if !json.Valid([]byte(args.Data)) {
		return EditEntityResult{}, &ValidationError{Field: "data", Message: "entity data must be valid JSON"}
	}

	token, err := c.api.FetchToken(ctx, c.baseURL, mwapi.TokenCSRF, "entity-edit")
	if err != nil {
		return EditEntityResult{}, err
	}

	query := url.Values{}
	query.Set("action", "wbeditentity")

	form := url.Values{}
	form.Set("data", args.Data)
	form.Set("token", token)
	if args.ID != "" {
		form.Set("id", args.ID)
	} else {
		form.Set("new", "item")
	}
	if args.Summary != "" {
		form.Set("summary", args.Summary)
	}

	resp, err := c.api.PostForm(ctx, c.baseURL, "entity-edit", query, form)
	if err != nil {
		return EditEntityResult{}, fmt.Errorf("failed to edit entity: %w", err)
	}
	if !resp.OK() {
		return EditEntityResult{}, &mwapi.UpstreamError{Op: "edit entity", StatusCode: resp.StatusCode, Body: resp.Snippet()}
	}

	var decoded editEntityResponse
	if err := resp.Decode(&decoded); err != nil {
		return EditEntityResult{}, fmt.Errorf("failed to parse entity edit response: %w", err)
	}

	// Upstream signals success with the integer 1; anything else is a
	// non-success outcome, not an error.
	if decoded.Success != 1 {
		metrics.RecordEdit("entity-edit", false)
		return EditEntityResult{
			Success: false,
			Message: "entity edit was not applied",
		}, nil
	}

	metrics.RecordEdit("entity-edit", true)
	c.logger.Info("Entity write succeeded", "entity_id", decoded.Entity.ID)

	return EditEntityResult{
		Success:  true,
		EntityID: decoded.Entity.ID,
		Message:  "Entity saved successfully",
	}, nil
}

// AddStatement adds a single value statement to an entity. The value is
// forwarded verbatim as the statement's JSON value.
func (c *Client) AddStatement(ctx context.Context, args AddStatementArgs) (AddStatementResult, error) {
	if args.EntityID == "" {
		return AddStatementResult{}, &ValidationError{Field: "entity_id", Message: "entity ID is required"}
	}
	if args.Property == "" {
		return AddStatementResult{}, &ValidationError{Field: "property", Message: "property ID is required"}
	}
	if args.Value == "" {
		return AddStatementResult{}, &ValidationError{Field: "value", Message: "statement value is required"}
	}
	if !json.Valid([]byte(args.Value)) {
		return AddStatementResult{}, &ValidationError{Field: "value", Message: "statement value must be valid JSON"}
	}

	token, err := c.api.FetchToken(ctx, c.baseURL, mwapi.TokenCSRF, "claim")
	if err != nil {
		return AddStatementResult{}, err
	}

	query := url.Values{}
	query.Set("action", "wbcreateclaim")

	form := url.Values{}
	form.Set("entity", args.EntityID)
	form.Set("property", args.Property)
	form.Set("snaktype", "value")
	form.Set("value", args.Value)
	form.Set("token", token)

	resp, err := c.api.PostForm(ctx, c.baseURL, "claim", query, form)
	if err != nil {
		return AddStatementResult{}, fmt.Errorf("failed to add statement: %w", err)
	}
	if !resp.OK() {
		return AddStatementResult{}, &mwapi.UpstreamError{Op: "add statement", StatusCode: resp.StatusCode, Body: resp.Snippet()}
	}

	var decoded createClaimResponse
	if err := resp.Decode(&decoded); err != nil {
		return AddStatementResult{}, fmt.Errorf("failed to parse statement response: %w", err)
	}

	if decoded.Success != 1 {
		metrics.RecordEdit("claim", false)
		return AddStatementResult{
			Success: false,
			Message: "statement was not added",
		}, nil
	}

	metrics.RecordEdit("claim", true)
	c.logger.Info("Statement added", "entity_id", args.EntityID, "property", args.Property)

	return AddStatementResult{
		Success:     true,
		StatementID: decoded.Claim.ID,
		Message:     "Statement added successfully",
	}, nil
}
