package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/wikibase-mcp-server/metrics"
	"github.com/olgasafonova/wikibase-mcp-server/tracing"
	"github.com/olgasafonova/wikibase-mcp-server/wiki"
	"github.com/olgasafonova/wikibase-mcp-server/wikibase"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	wikiClient     *wiki.Client
	wikibaseClient *wikibase.Client
	logger         *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(wikiClient *wiki.Client, wikibaseClient *wikibase.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		wikiClient:     wikiClient,
		wikibaseClient: wikibaseClient,
		logger:         logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Wiki tools
	case "GetPage":
		register(h, server, tool, spec, h.wikiClient.GetPage)
	case "GetPageInfo":
		register(h, server, tool, spec, h.wikiClient.GetPageInfo)
	case "Search":
		register(h, server, tool, spec, h.wikiClient.Search)
	case "EditPage":
		register(h, server, tool, spec, h.wikiClient.EditPage)
	case "CreatePage":
		register(h, server, tool, spec, h.wikiClient.CreatePage)
	case "DeletePage":
		register(h, server, tool, spec, h.wikiClient.DeletePage)

	// Wikibase tools
	case "GetEntity":
		register(h, server, tool, spec, h.wikibaseClient.GetEntity)
	case "SearchEntities":
		register(h, server, tool, spec, h.wikibaseClient.SearchEntities)
	case "EditEntity":
		register(h, server, tool, spec, h.wikibaseClient.EditEntity)
	case "AddStatement":
		register(h, server, tool, spec, h.wikibaseClient.AddStatement)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.String("mcp.tool.backend", spec.Backend),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "backend", spec.Backend}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	// Wiki args
	case wiki.GetPageArgs:
		attrs = append(attrs, "title", a.Title)
	case wiki.PageInfoArgs:
		attrs = append(attrs, "title", a.Title)
	case wiki.SearchArgs:
		attrs = append(attrs, "query", a.Query)
	case wiki.EditPageArgs:
		attrs = append(attrs, "title", a.Title)
	case wiki.CreatePageArgs:
		attrs = append(attrs, "title", a.Title)
	case wiki.DeletePageArgs:
		attrs = append(attrs, "title", a.Title)
	// Wikibase args
	case wikibase.GetEntityArgs:
		attrs = append(attrs, "entity_id", a.ID)
	case wikibase.SearchEntitiesArgs:
		attrs = append(attrs, "query", a.Query)
	case wikibase.EditEntityArgs:
		attrs = append(attrs, "entity_id", a.ID)
	case wikibase.AddStatementArgs:
		attrs = append(attrs, "entity_id", a.EntityID, "property", a.Property)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	// Wiki results
	case wiki.SearchResult:
		attrs = append(attrs, "results_count", r.Count)
	case wiki.EditResult:
		attrs = append(attrs, "success", r.Success)
	case wiki.DeleteResult:
		attrs = append(attrs, "success", r.Success)
	// Wikibase results
	case wikibase.SearchEntitiesResult:
		attrs = append(attrs, "results_count", r.Count)
	case wikibase.Entity:
		attrs = append(attrs, "claim_count", r.ClaimCount)
	case wikibase.EditEntityResult:
		attrs = append(attrs, "success", r.Success, "entity_id", r.EntityID)
	case wikibase.AddStatementResult:
		attrs = append(attrs, "success", r.Success)
	}

	h.logger.Info("Tool executed", attrs...)
}
