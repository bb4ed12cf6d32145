package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewCommunityMCPServer creates an MCP server with the community search
// tools registered.
func NewCommunityMCPServer(svc *CommunityService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "communitysearch",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_community",
		Description: "Find and characterize the k-d community around a node in the social graph. Reloads the full graph from the store, runs truss maintenance and greedy extraction, and returns the scored community with node and edge descriptors.",
	}, svc.SearchCommunity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "graph_stats",
		Description: "Report the vertex and edge counts of the property graph as currently stored.",
	}, svc.GraphStats)

	return server
}

// RunMCPServerStdio runs the MCP server on stdio transport, blocking
// until stdin is closed or the context is cancelled.
func RunMCPServerStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
