package wikibase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/olgasafonova/wikibase-mcp-server/internal/mwapi"
)

// entitiesResponse is the expected shape of a wbgetentities reply. Entity
// bodies are kept raw so the full upstream JSON can be passed through.
type entitiesResponse struct {
	Entities map[string]json.RawMessage `json:"entities"`
}

// entityBody is the subset of an entity document we summarize for callers.
type entityBody struct {
	ID           string                       `json:"id"`
	Missing      *string                      `json:"missing"`
	Labels       map[string]termEntry         `json:"labels"`
	Descriptions map[string]termEntry         `json:"descriptions"`
	Claims       map[string][]json.RawMessage `json:"claims"`
}

type termEntry struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// searchEntitiesResponse is the expected shape of a wbsearchentities reply.
type searchEntitiesResponse struct {
	Search []struct {
		ID          string `json:"id"`
		Label       string `json:"label"`
		Description string `json:"description"`
	} `json:"search"`
}

// GetEntity fetches a single entity by ID and returns a summary alongside
// the raw entity document.
func (c *Client) GetEntity(ctx context.Context, args GetEntityArgs) (Entity, error) {
	if args.ID == "" {
		return Entity{}, &ValidationError{Field: "id", Message: "entity ID is required"}
	}

	query := url.Values{}
	query.Set("action", "wbgetentities")
	query.Set("ids", args.ID)

	resp, err := c.api.Get(ctx, c.baseURL, "get entity", query)
	if err != nil {
		return Entity{}, fmt.Errorf("failed to fetch entity: %w", err)
	}
	if !resp.OK() {
		return Entity{}, &mwapi.UpstreamError{Op: "get entity", StatusCode: resp.StatusCode, Body: resp.Snippet()}
	}

	var decoded entitiesResponse
	if err := resp.Decode(&decoded); err != nil {
		return Entity{}, fmt.Errorf("failed to parse entity response: %w", err)
	}

	raw, ok := decoded.Entities[args.ID]
	if !ok {
		return Entity{}, &EntityNotFoundError{ID: args.ID}
	}

	var body entityBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return Entity{}, fmt.Errorf("failed to parse entity body: %w", err)
	}
	if body.Missing != nil {
		return Entity{}, &EntityNotFoundError{ID: args.ID}
	}

	labels := make(map[string]string, len(body.Labels))
	for lang, term := range body.Labels {
		labels[lang] = term.Value
	}
	descriptions := make(map[string]string, len(body.Descriptions))
	for lang, term := range body.Descriptions {
		descriptions[lang] = term.Value
	}

	claimCount := 0
	for _, statements := range body.Claims {
		claimCount += len(statements)
	}

	return Entity{
		ID:           args.ID,
		Labels:       labels,
		Descriptions: descriptions,
		ClaimCount:   claimCount,
		Data:         string(raw),
	}, nil
}

// SearchEntities searches entity labels and aliases, returning hits in
// upstream-provided order.
func (c *Client) SearchEntities(ctx context.Context, args SearchEntitiesArgs) (SearchEntitiesResult, error) {
	if args.Query == "" {
		return SearchEntitiesResult{}, &ValidationError{Field: "query", Message: "search query is required"}
	}

	entityType := args.Type
	switch entityType {
	case "":
		entityType = "item"
	case "item", "property":
	default:
		return SearchEntitiesResult{}, &ValidationError{Field: "type", Message: "entity type must be 'item' or 'property'"}
	}

	limit := normalizeLimit(args.Limit, DefaultSearchLimit, MaxSearchLimit)

	query := url.Values{}
	query.Set("action", "wbsearchentities")
	query.Set("search", args.Query)
	query.Set("language", "en")
	query.Set("type", entityType)
	query.Set("limit", strconv.Itoa(limit))

	resp, err := c.api.Get(ctx, c.baseURL, "search entities", query)
	if err != nil {
		return SearchEntitiesResult{}, fmt.Errorf("failed to search entities: %w", err)
	}
	if !resp.OK() {
		return SearchEntitiesResult{}, &mwapi.UpstreamError{Op: "search entities", StatusCode: resp.StatusCode, Body: resp.Snippet()}
	}

	var decoded searchEntitiesResponse
	if err := resp.Decode(&decoded); err != nil {
		return SearchEntitiesResult{}, fmt.Errorf("failed to parse entity search response: %w", err)
	}

	results := make([]EntityHit, 0, len(decoded.Search))
	for _, hit := range decoded.Search {
		results = append(results, EntityHit{
			ID:          hit.ID,
			Label:       hit.Label,
			Description: hit.Description,
		})
	}

	return SearchEntitiesResult{
		Query:   args.Query,
		Results: results,
		Count:   len(results),
	}, nil
}
