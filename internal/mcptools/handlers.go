package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/commgraph/communitysearch/internal/ingest"
	"github.com/commgraph/communitysearch/internal/search"
	"github.com/commgraph/communitysearch/internal/store"
)

// CommunityService holds the collaborators used by the MCP tool handlers.
type CommunityService struct {
	svc      *search.Service
	st       store.Store
	defaultK int
	defaultD int
}

// NewCommunityService creates a CommunityService. defaultK and defaultD
// apply when a tool call leaves k or d unset.
func NewCommunityService(svc *search.Service, st store.Store, defaultK, defaultD int) *CommunityService {
	return &CommunityService{svc: svc, st: st, defaultK: defaultK, defaultD: defaultD}
}

// SearchCommunity runs one k-d community query around the given node.
func (s *CommunityService) SearchCommunity(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchCommunityInput,
) (*mcp.CallToolResult, SearchCommunityOutput, error) {
	k := input.K
	if k <= 0 {
		k = s.defaultK
	}
	d := input.D
	if d <= 0 {
		d = s.defaultD
	}

	result, err := s.svc.SearchCommunity(ctx, k, d, input.NodeID)
	if err != nil {
		return nil, SearchCommunityOutput{}, fmt.Errorf("search community: %w", err)
	}
	return nil, SearchCommunityOutput{Result: *result}, nil
}

// GraphStats ingests the full graph and reports its vertex/edge counts.
func (s *CommunityService) GraphStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GraphStatsInput,
) (*mcp.CallToolResult, GraphStatsOutput, error) {
	g, err := ingest.Load(ctx, s.st)
	if err != nil {
		return nil, GraphStatsOutput{}, fmt.Errorf("graph stats: %w", err)
	}
	return nil, GraphStatsOutput{Vertices: g.Order(), Edges: g.Size()}, nil
}
