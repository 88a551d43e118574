// Package wikibase exposes the knowledge base's entity and statement
// operations. It shares the authenticated transport and session credential
// with the content wiki client and follows the same fetch-fresh-token
// discipline for writes.
package wikibase

import (
	"log/slog"

	"github.com/olgasafonova/wikibase-mcp-server/internal/mwapi"
)

// Client handles communication with the Wikibase API.
type Client struct {
	api     *mwapi.Client
	baseURL string
	logger  *slog.Logger
}

// NewClient creates a knowledge base client on top of the shared transport.
func NewClient(api *mwapi.Client, baseURL string, logger *slog.Logger) *Client {
	return &Client{
		api:     api,
		baseURL: baseURL,
		logger:  logger,
	}
}

// normalizeLimit ensures limit is within bounds.
func normalizeLimit(limit, defaultVal, maxVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > maxVal {
		return maxVal
	}
	return limit
}
