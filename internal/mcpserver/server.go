// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the parity check as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specparity"
)

const serverInstructions = `specparity MCP server: checks that unified OpenAPI documents carry exactly the paths of the standalone versioned documents they were merged from.

Configuration: All defaults are configurable via SPECPARITY_MCP_* environment variables set in your MCP client config.

Key settings:
- SPECPARITY_MCP_CONFIG_FILE: parity configuration used when check_parity is called without config_file
- SPECPARITY_MCP_SPEC_DIR: spec directory used when check_parity is called without spec_dir
- SPECPARITY_MCP_CHECK_TIMEOUT (default: 30s): time limit for one check
- SPECPARITY_MCP_PATH_LIMIT (default: 100): paths listed per namespace by partition_paths
- SPECPARITY_MCP_INCLUDE_OTHER (default: false): list paths outside every namespace

Documents are re-read on every call; nothing is cached between checks.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer().Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "specparity", Version: specparity.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_parity",
		Description: "Run the path-parity check between the unified OpenAPI documents and the standalone v1/v2 documents. Returns pass/fail, per-rule matched/missing/unexpected paths and informational notes. Missing or malformed documents are reported as errors. Use spec_dir to point at a different checkout; config_file selects a custom rule set.",
	}, handleCheckParity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "partition_paths",
		Description: "Extract the path identifiers of one OpenAPI document (file or inline content) and split them by namespace prefix. Defaults to the v1 (/v1/) and v2 (/v2/) namespaces; pass namespaces to use others. Returns per-namespace counts and sorted paths, limited by limit.",
	}, handlePartitionPaths)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// clampLimit applies the configured default and ceiling to a requested limit.
func clampLimit(limit int) int {
	if limit <= 0 {
		limit = cfg.PathLimit
	}
	if limit > cfg.MaxPathLimit {
		limit = cfg.MaxPathLimit
	}
	return limit
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
