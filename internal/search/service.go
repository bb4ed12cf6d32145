// Package search is the public entry point for k-d community queries: it
// ingests the full graph, runs the two analytic stages in order, and
// assembles the scored result.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/commgraph/communitysearch/internal/graph"
	"github.com/commgraph/communitysearch/internal/ingest"
	"github.com/commgraph/communitysearch/internal/store"
)

// ErrNodeNotFound is returned when the query node identifier has no vertex
// in the freshly ingested graph. It is a user-facing condition, not a
// system fault, and is never retried.
var ErrNodeNotFound = errors.New("query node not found")

// Maintainer is the structural-maintenance stage. It mutates or annotates
// the graph in place to prepare it for extraction; its internals are owned
// by the concrete strategy.
type Maintainer interface {
	Maintain(g *graph.Graph, query *graph.Vertex, k, d int) error
}

// Extractor is the community-extraction stage. It returns the community
// subgraph as a restriction of the input graph and must not mutate the
// input graph's identities.
type Extractor interface {
	Extract(g, candidate *graph.Graph, k, d int, query *graph.Vertex) (*graph.Graph, error)
}

// Service orchestrates one community search end to end. Each call builds
// and discards its own graph, so concurrent calls are independent; the
// store is the only shared dependency and is used read-only.
type Service struct {
	store      store.Store
	maintainer Maintainer
	extractor  Extractor
	log        *logrus.Logger
}

// NewService wires a Service from its collaborators. A nil logger falls
// back to the standard logrus logger.
func NewService(st store.Store, m Maintainer, e Extractor, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{store: st, maintainer: m, extractor: e, log: log}
}

// SearchCommunity finds and characterizes the k-d community around nodeID.
// k and d are forwarded verbatim to the analytic stages. Failures at any
// step propagate unchanged; no partial results are ever returned.
func (s *Service) SearchCommunity(ctx context.Context, k, d int, nodeID int64) (*CommunityResult, error) {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{
		"queryId": uuid.NewString(),
		"nodeId":  nodeID,
		"k":       k,
		"d":       d,
	})

	g, err := ingest.Load(ctx, s.store)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"vertices": g.Order(),
		"edges":    g.Size(),
	}).Debug("graph ingested")

	query, ok := g.VertexByID(nodeID)
	if !ok {
		return nil, fmt.Errorf("search: node %d: %w", nodeID, ErrNodeNotFound)
	}

	// Extraction is defined over the maintenance stage's output, so the
	// stages run strictly in sequence.
	if err := s.maintainer.Maintain(g, query, k, d); err != nil {
		return nil, fmt.Errorf("search: maintenance stage: %w", err)
	}
	community, err := s.extractor.Extract(g, g, k, d, query)
	if err != nil {
		return nil, fmt.Errorf("search: extraction stage: %w", err)
	}

	result := assemble(community, query, time.Since(start), nodeID)
	log.WithFields(logrus.Fields{
		"communitySize": result.CommunitySize,
		"tightness":     result.StructuralTightness,
		"elapsedMs":     result.ResponseTimeMs,
	}).Info("community search complete")
	return result, nil
}
