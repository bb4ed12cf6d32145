package store

import (
	"context"
	"fmt"
)

// Seed loads a small demo social graph through the Seeder interface:
// six users with numeric attributes, two posts, and a FOLLOWS/LIKES edge
// set with varied weights. Node identifiers are globally unique across
// tables, as the Kuzu backend requires.
func Seed(ctx context.Context, s Seeder) error {
	if err := s.InitSchema(ctx); err != nil {
		return fmt.Errorf("seed: init schema: %w", err)
	}

	nodes := []Node{
		{ID: 1, Labels: []string{"User"}, Props: map[string]any{"age": int64(29), "region": int64(3)}},
		{ID: 2, Labels: []string{"User"}, Props: map[string]any{"age": int64(29), "region": int64(5)}},
		{ID: 3, Labels: []string{"User"}, Props: map[string]any{"age": int64(31), "region": int64(3)}},
		{ID: 4, Labels: []string{"User"}, Props: map[string]any{"age": int64(24), "region": int64(5)}},
		{ID: 5, Labels: []string{"User"}, Props: map[string]any{"age": int64(42), "region": int64(1)}},
		{ID: 6, Labels: []string{"User"}, Props: map[string]any{"age": int64(31), "region": int64(5)}},
		{ID: 7, Labels: []string{"Post"}, Props: map[string]any{"topic": int64(12), "score": int64(88)}},
		{ID: 8, Labels: []string{"Post"}, Props: map[string]any{"topic": int64(7), "score": int64(40)}},
	}
	for _, n := range nodes {
		if err := s.AddNode(ctx, n); err != nil {
			return fmt.Errorf("seed: node %d: %w", n.ID, err)
		}
	}

	rels := []Relationship{
		{ID: 101, Type: "FOLLOWS", StartID: 1, EndID: 2, Props: map[string]any{"weight": 2.0}},
		{ID: 102, Type: "FOLLOWS", StartID: 2, EndID: 3, Props: map[string]any{"weight": 1.5}},
		{ID: 103, Type: "FOLLOWS", StartID: 3, EndID: 1, Props: map[string]any{"weight": 1.0}},
		{ID: 104, Type: "FOLLOWS", StartID: 1, EndID: 4, Props: map[string]any{"weight": 0.5}},
		{ID: 105, Type: "FOLLOWS", StartID: 4, EndID: 2, Props: map[string]any{"weight": 1.0}},
		{ID: 106, Type: "FOLLOWS", StartID: 5, EndID: 6, Props: map[string]any{"weight": 1.0}},
		{ID: 107, Type: "LIKES", StartID: 1, EndID: 7, Props: map[string]any{"weight": 1.0}},
		{ID: 108, Type: "LIKES", StartID: 2, EndID: 7, Props: map[string]any{"weight": 3.0}},
		{ID: 109, Type: "LIKES", StartID: 5, EndID: 8, Props: map[string]any{}},
	}
	for _, r := range rels {
		if err := s.AddRelationship(ctx, r); err != nil {
			return fmt.Errorf("seed: relationship %d: %w", r.ID, err)
		}
	}
	return nil
}
