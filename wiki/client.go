// Package wiki exposes the content wiki's read and write operations. Each
// operation maps one exposed capability to upstream HTTP calls through the
// shared authenticated transport; mutating operations fetch a fresh CSRF
// token immediately before their write.
package wiki

import (
	"log/slog"

	"github.com/olgasafonova/wikibase-mcp-server/internal/mwapi"
)

// Client handles communication with the content wiki API.
type Client struct {
	api     *mwapi.Client
	baseURL string
	logger  *slog.Logger
}

// NewClient creates a content wiki client on top of the shared transport.
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
