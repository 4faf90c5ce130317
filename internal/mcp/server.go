// Package mcp provides the stdio MCP server exposing marks tools for coding agents.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/filemarks/internal/buildinfo"
	"github.com/go-ports/filemarks/internal/menu"
	"github.com/go-ports/filemarks/internal/registry"
	"github.com/go-ports/filemarks/internal/service"
)

const setDescription = `Bookmark a file under a single-character key for the current project context. Keys are one lowercase letter or digit. Setting an existing key overwrites it.`

const jumpDescription = `Look up the file bookmarked under a key in the current project context. Returns the stored path, or found=false when the key is unset.`

const listDescription = `List all bookmarks for the current project context as "[key] = path" lines, sorted by key.`

const applyDescription = `Replace the whole bookmark set for the current project context from a list of "[key] = path" lines. Every line must have a valid key and an existing file path or nothing is changed; rejected line numbers are reported back.`

// NewServer creates and registers all marks tools on a new MCP server.
// It is intentionally separate from Serve so that tests and other callers
// can obtain a fully configured server without committing to the stdio
// transport.
func NewServer(svc *service.Service) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("filemarks", buildinfo.Version)
	registerTools(s, svc)
	return s
}

// Serve starts the stdio MCP server, blocking until stdin closes.
func Serve(_ context.Context) error {
	svc, err := service.New("")
	if err != nil {
		return fmt.Errorf("mcp: init service: %w", err)
	}
	defer svc.Close()

	return mcpserver.ServeStdio(NewServer(svc))
}

// registerTools wires all four MCP tools into the server.
func registerTools(s *mcpserver.MCPServer, svc *service.Service) {
	s.AddTool(mcp.NewTool("marks_set",
		mcp.WithDescription(setDescription),
		mcp.WithString("key",
			mcp.Description("Slot key: one lowercase letter or digit."),
			mcp.Required(),
		),
		mcp.WithString("path",
			mcp.Description("Path of the file to bookmark."),
			mcp.Required(),
		),
		mcp.WithString("dir",
			mcp.Description("Directory the context is resolved from. Defaults to cwd."),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSet(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("marks_jump",
		mcp.WithDescription(jumpDescription),
		mcp.WithString("key",
			mcp.Description("Slot key to look up."),
			mcp.Required(),
		),
		mcp.WithString("dir",
			mcp.Description("Directory the context is resolved from. Defaults to cwd."),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleJump(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("marks_list",
		mcp.WithDescription(listDescription),
		mcp.WithString("dir",
			mcp.Description("Directory the context is resolved from. Defaults to cwd."),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleList(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("marks_apply",
		mcp.WithDescription(applyDescription),
		mcp.WithArray("lines",
			mcp.Description("Edited \"[key] = path\" lines, one bookmark each."),
			mcp.WithStringItems(),
			mcp.Required(),
		),
		mcp.WithString("dir",
			mcp.Description("Directory the context is resolved from. Defaults to cwd."),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleApply(ctx, svc, req)
	})
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

func handleSet(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := req.GetString("key", "")
	if !registry.ValidKey(key) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid key %q: must be one lowercase letter or digit", key)), nil
	}

	path := menu.ExpandPath(req.GetString("path", ""))
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		// NoActiveFile: nothing addressable to record, not an error.
		return jsonResult(map[string]any{
			"recorded": false,
			"message":  fmt.Sprintf("not a regular file: %s; nothing recorded", path),
		})
	}

	if err := svc.Set(toolDir(req), key, path); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"recorded": true,
		"key":      key,
		"path":     path,
	})
}

func handleJump(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := req.GetString("key", "")

	path, ok, err := svc.Jump(toolDir(req), key)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		return jsonResult(map[string]any{"found": false, "key": key})
	}
	return jsonResult(map[string]any{"found": true, "key": key, "path": path})
}

func handleList(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lines, err := svc.Lines(toolDir(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func handleApply(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lines := req.GetStringSlice("lines", make([]string, 0))

	result, err := svc.Reconcile(toolDir(req), dropBlank(menu.StripMarkers(lines)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !result.Committed {
		return jsonResult(map[string]any{
			"committed":    false,
			"failed_lines": result.FailedLines,
			"message":      "every line needs a [0-9a-z] key and an existing file; nothing was changed",
		})
	}
	return jsonResult(map[string]any{
		"committed": true,
		"count":     result.Count,
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// toolDir resolves the working directory for a tool call.
func toolDir(req mcp.CallToolRequest) string {
	if dir := req.GetString("dir", ""); dir != "" {
		return dir
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// dropBlank removes empty and whitespace-only lines.
func dropBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
