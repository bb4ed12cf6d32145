package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Compile-time assertion: *Neo4jStore satisfies Store.
var _ Store = (*Neo4jStore)(nil)

// edgeTraversal pulls every directed relationship plus both endpoint
// nodes, with no pagination and no filtering.
const edgeTraversal = "MATCH (n)-[r]->(m) RETURN n, r, m"

// Neo4jStore implements the read boundary against a Neo4j server. The
// driver holds a process-wide connection pool; each scan acquires a scoped
// session from it and releases the session deterministically.
type Neo4jStore struct {
	driver neo4j.DriverWithContext
}

// NewNeo4jStore connects to the given bolt/neo4j URI with basic auth.
func NewNeo4jStore(uri, username, password string) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j: create driver: %w", err)
	}
	return &Neo4jStore{driver: driver}, nil
}

// EdgeTriples runs the full-graph traversal in one read session. The
// session is released on every exit path before the method returns.
func (s *Neo4jStore) EdgeTriples(ctx context.Context, fn func(Triple) error) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, edgeTraversal, nil)
	if err != nil {
		return fmt.Errorf("neo4j: run traversal: %w", err)
	}

	for result.Next(ctx) {
		record := result.Record()
		triple, err := recordToTriple(record)
		if err != nil {
			return err
		}
		if err := fn(triple); err != nil {
			return err
		}
	}
	if err := result.Err(); err != nil {
		return fmt.Errorf("neo4j: consume traversal: %w", err)
	}
	return nil
}

// Close shuts down the driver and its connection pool.
func (s *Neo4jStore) Close() error {
	return s.driver.Close(context.Background())
}

// recordToTriple converts one n/r/m result record into a store Triple.
// Endpoint identities come from the relationship's StartId/EndId, not the
// node objects, so the same node appearing in different rows is unambiguous.
func recordToTriple(record *neo4j.Record) (Triple, error) {
	nVal, ok := record.Get("n")
	if !ok {
		return Triple{}, fmt.Errorf("neo4j: record missing column n")
	}
	rVal, ok := record.Get("r")
	if !ok {
		return Triple{}, fmt.Errorf("neo4j: record missing column r")
	}
	mVal, ok := record.Get("m")
	if !ok {
		return Triple{}, fmt.Errorf("neo4j: record missing column m")
	}

	n, ok := nVal.(neo4j.Node)
	if !ok {
		return Triple{}, fmt.Errorf("neo4j: column n is %T, want node", nVal)
	}
	r, ok := rVal.(neo4j.Relationship)
	if !ok {
		return Triple{}, fmt.Errorf("neo4j: column r is %T, want relationship", rVal)
	}
	m, ok := mVal.(neo4j.Node)
	if !ok {
		return Triple{}, fmt.Errorf("neo4j: column m is %T, want node", mVal)
	}

	return Triple{
		Start: Node{ID: n.Id, Labels: n.Labels, Props: n.Props},
		Rel: Relationship{
			ID:      r.Id,
			Type:    r.Type,
			StartID: r.StartId,
			EndID:   r.EndId,
			Props:   r.Props,
		},
		End: Node{ID: m.Id, Labels: m.Labels, Props: m.Props},
	}, nil
}
