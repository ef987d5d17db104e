// Package mcp exposes the recommendation and filter core as Model Context Protocol tools.
package mcp

import (
	"context"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonathan/smartjob/internal/logging"
)

const serverName = "smartjob"

// NewServer builds an MCP server with every tool registered.
func NewServer(version string, log *logging.Logger) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)
	RegisterTools(server, log.With("component", "mcp"))
	return server
}

// HTTPHandler serves server over the streamable HTTP transport.
func HTTPHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, nil)
}

// RunStdio serves server on stdin/stdout until the client disconnects or ctx ends.
func RunStdio(ctx context.Context, server *sdkmcp.Server) error {
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}
