// Package mcpserver exposes the deck tool set over the Model Context
// Protocol, on stdio or as an SSE endpoint mounted into the HTTP server.
package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/security"
	"github.com/slidesmith/slidesmith/internal/tools"
)

const (
	serverName    = "slidesmith"
	serverVersion = "1.1.0"
)

// Bridge adapts the tool registry onto an MCP server.
type Bridge struct {
	mcp   *server.MCPServer
	audit *security.AuditLogger
}

func New(d *deck.Service, audit *security.AuditLogger) *Bridge {
	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	b := &Bridge{mcp: s, audit: audit}
	for _, t := range Registry(d) {
		b.register(t)
	}
	return b
}

// Registry builds every tool bound to the given deck service.
func Registry(d *deck.Service) []tools.Tool {
	return []tools.Tool{
		tools.OpenPresentationTool(d),
		tools.CreatePresentationTool(d),
		tools.SavePresentationTool(d),
		tools.ClosePresentationTool(d),
		tools.GetPresentationTool(d),
		tools.GetSlidesTool(d),
		tools.AddSlideTool(d),
		tools.DeleteSlideTool(d),
		tools.GetSlideTextTool(d),
		tools.GetSlideShapesTool(d),
		tools.SetSlideTitleTool(d),
		tools.GetDocumentLayoutTool(d),
		tools.AddTextboxTool(d),
		tools.AddImageTool(d),
		tools.UpdateTextTool(d),
		tools.UpdateShapeByIDTool(d),
		tools.UngroupShapesTool(d),
		tools.AddTableTool(d),
		tools.UpdateTableCellTool(d),
		tools.GetTableContentTool(d),
		tools.AddChartTool(d),
	}
}

// register wraps a tool so failures come back as tool results rather than
// protocol errors, keeping the session alive for the agent to recover.
func (b *Bridge) register(t tools.Tool) {
	schema, _ := json.Marshal(t.InputSchema)
	tool := mcp.NewToolWithRawSchema(t.Name, t.Description, schema)
	name, exec := t.Name, t.Execute

	b.mcp.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		out, err := exec(ctx, req.GetArguments())
		elapsedMs := time.Since(start).Milliseconds()

		if err != nil {
			b.audit.LogToolCall(name, "", elapsedMs, false, err.Error())
			log.Warn().Str("tool", name).Int64("duration_ms", elapsedMs).Err(err).Msg("tool call failed")
			return mcp.NewToolResultError(err.Error()), nil
		}
		b.audit.LogToolCall(name, "", elapsedMs, true, "")
		log.Debug().Str("tool", name).Int64("duration_ms", elapsedMs).Msg("tool call")
		return mcp.NewToolResultText(out), nil
	})
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects or
// ctx is cancelled, so a shutdown signal also stops the stdio session.
func (b *Bridge) ServeStdio(ctx context.Context) error {
	log.Info().Msg("serving MCP on stdio")
	return b.serveStream(ctx, os.Stdin, os.Stdout)
}

func (b *Bridge) serveStream(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(b.mcp).Listen(ctx, in, out)
}

// SSEHandler returns the MCP-over-SSE endpoint for mounting into a router.
func (b *Bridge) SSEHandler(basePath string) http.Handler {
	return server.NewSSEServer(b.mcp, server.WithBasePath(basePath))
}
