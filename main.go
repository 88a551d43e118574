// Wikibase MCP Server - A Model Context Protocol server for MediaWiki and
// Wikibase instances. Provides tools for reading, searching, and editing
// wiki pages and knowledge base entities.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/wikibase-mcp-server/internal/mwapi"
	"github.com/olgasafonova/wikibase-mcp-server/tools"
	"github.com/olgasafonova/wikibase-mcp-server/tracing"
	"github.com/olgasafonova/wikibase-mcp-server/wiki"
	"github.com/olgasafonova/wikibase-mcp-server/wikibase"
)

const (
	ServerName    = "wikibase-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := mwapi.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize distributed tracing
	ctx := context.Background()
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logger.Warn("Tracing setup failed, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logger.Warn("Tracing shutdown failed", "error", err)
			}
		}()
	}

	// Shared transport and session for both backends
	session := mwapi.NewSession()
	api := mwapi.NewClient(config, session, logger)

	// Log in the bot account before serving any requests so writes can
	// carry the session credential. A failed login is fatal: proceeding
	// would silently downgrade every write to anonymous.
	if config.HasCredentials() {
		if err := api.Login(ctx, config.WikiURL, config.Username, config.Password); err != nil {
			log.Fatalf("Bot login failed: %v", err)
		}
	} else {
		logger.Info("No bot credentials configured, running read-only against authenticated endpoints")
	}

	wikiClient := wiki.NewClient(api, config.WikiURL, logger)
	wikibaseClient := wikibase.NewClient(api, config.WikibaseURL, logger)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `Wikibase MCP Server provides tools for interacting with MediaWiki wikis and Wikibase knowledge bases.

Available tools:
- wiki_get_page: Get a page's raw wikitext content
- wiki_get_page_info: Get page metadata (last edit, contributors)
- wiki_search: Full-text search across wiki pages
- wiki_edit_page: Update an existing page (requires authentication)
- wiki_create_page: Create a new page (requires authentication)
- wiki_delete_page: Delete a page (requires authentication)
- wikibase_get_entity: Fetch an entity by ID (e.g. Q42)
- wikibase_search_entities: Search entities by label
- wikibase_edit_entity: Create or edit an entity (requires authentication)
- wikibase_add_statement: Add a statement to an entity (requires authentication)

Resources:
- wiki://page/{title}: Raw wikitext of a page

Configure via environment variables:
- WIKI_API_URL: MediaWiki API URL (default: https://en.wikipedia.org/w/api.php)
- WIKIBASE_API_URL: Wikibase API URL (default: https://www.wikidata.org/w/api.php)
- WIKI_BOT_USERNAME: Bot username (for editing)
- WIKI_BOT_PASSWORD: Bot password (for editing)
- WIKI_TIMEOUT: HTTP timeout, e.g. 30s
- WIKI_USER_AGENT: Override the User-Agent header`,
	})

	// Register all tools and resources
	registry := tools.NewHandlerRegistry(wikiClient, wikibaseClient, logger)
	registry.RegisterAll(server)
	registry.RegisterResources(server)

	// Run server on stdio transport
	logger.Info("Starting Wikibase MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"wiki_url", config.WikiURL,
		"wikibase_url", config.WikibaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
