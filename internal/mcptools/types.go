package mcptools

import "github.com/commgraph/communitysearch/internal/search"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// SearchCommunityInput is the input for the search_community MCP tool.
type SearchCommunityInput struct {
	NodeID int64 `json:"nodeId" jsonschema:"the native identifier of the query node"`
	K      int   `json:"k,omitempty" jsonschema:"truss cohesion parameter, forwarded to the analytic stages"`
	D      int   `json:"d,omitempty" jsonschema:"hop-distance bound around the query node"`
}

// SearchCommunityOutput is the result of the search_community MCP tool.
type SearchCommunityOutput struct {
	Result search.CommunityResult `json:"result"`
}

// GraphStatsInput is the input for the graph_stats MCP tool.
type GraphStatsInput struct{}

// GraphStatsOutput is the result of the graph_stats MCP tool.
type GraphStatsOutput struct {
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
}
