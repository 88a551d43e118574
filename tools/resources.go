package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/wikibase-mcp-server/wiki"
)

const pageResourcePrefix = "wiki://page/"

// RegisterResources registers MCP resources with the server. Page content is
// exposed under wiki://page/{title} so clients can read pages without a tool
// call.
func (h *HandlerRegistry) RegisterResources(server *mcp.Server) {
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: pageResourcePrefix + "{title}",
		Name:        "wiki_page",
		Title:       "Wiki Page",
		Description: "Raw wikitext content of a wiki page, addressed by title.",
		MIMEType:    "text/plain",
	}, h.readPageResource)

	h.logger.Info("Registered resources", "count", 1)
}

// readPageResource resolves a wiki://page/{title} URI to page content.
func (h *HandlerRegistry) readPageResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI

	encoded, ok := strings.CutPrefix(uri, pageResourcePrefix)
	if !ok || encoded == "" {
		return nil, fmt.Errorf("unsupported resource URI: %s", uri)
	}
	title, err := url.PathUnescape(encoded)
	if err != nil {
		return nil, fmt.Errorf("malformed resource URI %q: %w", uri, err)
	}

	page, err := h.wikiClient.GetPage(ctx, wiki.GetPageArgs{Title: title})
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     page.Content,
		}},
	}, nil
}
