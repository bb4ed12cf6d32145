//go:build cgo

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	kuzu "github.com/kuzudb/go-kuzu"
)

// Compile-time assertions: *KuzuStore satisfies Store and Seeder.
var (
	_ Store  = (*KuzuStore)(nil)
	_ Seeder = (*KuzuStore)(nil)
)

// KuzuStore implements the store boundary on an embedded KuzuDB instance.
// It requires CGO because the go-kuzu driver wraps KuzuDB's C library.
//
// KuzuDB is schema-first, so the social graph lives in fixed node and
// relationship tables. Node identifiers must be globally unique across
// tables; the seeder is responsible for that.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	return openKuzu(":memory:")
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at
// the given path. KuzuDB creates the leaf directory itself.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("kuzu: create parent directory: %w", err)
	}
	return openKuzu(dbPath)
}

func openKuzu(path string) (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema.
// Order matters: node tables must precede relationship tables.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS User(
		id INT64,
		age INT64,
		region INT64,
		PRIMARY KEY(id)
	)`,
	`CREATE NODE TABLE IF NOT EXISTS Post(
		id INT64,
		topic INT64,
		score INT64,
		PRIMARY KEY(id)
	)`,
	`CREATE REL TABLE IF NOT EXISTS FOLLOWS(FROM User TO User, rel_id INT64, weight DOUBLE)`,
	`CREATE REL TABLE IF NOT EXISTS LIKES(FROM User TO Post, rel_id INT64, weight DOUBLE)`,
}

// InitSchema creates all node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// nodeColumns maps each node table to the property columns the store
// round-trips through the Props map.
var nodeColumns = map[string][]string{
	"User": {"age", "region"},
	"Post": {"topic", "score"},
}

// relTables enumerates the relationship tables with their endpoint tables.
var relTables = []struct {
	table, from, to string
}{
	{"FOLLOWS", "User", "User"},
	{"LIKES", "User", "Post"},
}

// ---------- Write operations ----------

// AddNode inserts a node into the table matching its first known label.
// Property values are coerced to the table's integer columns; unknown
// properties are dropped.
func (s *KuzuStore) AddNode(_ context.Context, n Node) error {
	table := ""
	for _, l := range n.Labels {
		if _, ok := nodeColumns[l]; ok {
			table = l
			break
		}
	}
	if table == "" {
		return fmt.Errorf("kuzu: add node %d: no table for labels %v", n.ID, n.Labels)
	}

	cols := nodeColumns[table]
	params := map[string]any{"id": n.ID}
	assigns := "id: $id"
	for _, c := range cols {
		params[c] = asInt64(n.Props[c])
		assigns += fmt.Sprintf(", %s: $%s", c, c)
	}
	// Table and column names are fixed internal constants, not user input.
	cypher := fmt.Sprintf("CREATE (n:%s {%s})", table, assigns)
	return s.exec(cypher, params)
}

// AddRelationship inserts a relationship into the table matching its type.
func (s *KuzuStore) AddRelationship(_ context.Context, r Relationship) error {
	for _, rt := range relTables {
		if rt.table != r.Type {
			continue
		}
		weight := 1.0
		if w, ok := r.Props["weight"]; ok {
			weight = asFloat64(w)
		}
		cypher := fmt.Sprintf(
			`MATCH (a:%s {id: $src}), (b:%s {id: $dst})
			 CREATE (a)-[:%s {rel_id: $relId, weight: $weight}]->(b)`,
			rt.from, rt.to, rt.table,
		)
		return s.exec(cypher, map[string]any{
			"src":    r.StartID,
			"dst":    r.EndID,
			"relId":  r.ID,
			"weight": weight,
		})
	}
	return fmt.Errorf("kuzu: unsupported relationship type: %s", r.Type)
}

// ---------- Read operations ----------

// EdgeTriples scans every relationship table and yields one triple per
// relationship, endpoint identities taken from the stored id columns.
func (s *KuzuStore) EdgeTriples(ctx context.Context, fn func(Triple) error) error {
	for _, rt := range relTables {
		if err := ctx.Err(); err != nil {
			return err
		}

		fromCols := nodeColumns[rt.from]
		toCols := nodeColumns[rt.to]

		cypher := fmt.Sprintf(
			"MATCH (a:%s)-[r:%s]->(b:%s) RETURN a.id%s, b.id%s, r.rel_id, r.weight",
			rt.from, rt.table, rt.to,
			columnList("a", fromCols), columnList("b", toCols),
		)
		rows, err := s.query(cypher, nil)
		if err != nil {
			return err
		}

		for _, row := range rows {
			i := 0
			start := Node{ID: asInt64(row[i]), Labels: []string{rt.from}, Props: map[string]any{}}
			i++
			for _, c := range fromCols {
				start.Props[c] = asInt64(row[i])
				i++
			}
			end := Node{ID: asInt64(row[i]), Labels: []string{rt.to}, Props: map[string]any{}}
			i++
			for _, c := range toCols {
				end.Props[c] = asInt64(row[i])
				i++
			}
			rel := Relationship{
				ID:      asInt64(row[i]),
				Type:    rt.table,
				StartID: start.ID,
				EndID:   end.ID,
				Props:   map[string]any{"weight": asFloat64(row[i+1])},
			}
			if err := fn(Triple{Start: start, Rel: rel, End: end}); err != nil {
				return err
			}
		}
	}
	return nil
}

// columnList renders ", alias.col" pairs for a RETURN clause.
func columnList(alias string, cols []string) string {
	out := ""
	for _, c := range cols {
		out += fmt.Sprintf(", %s.%s", alias, c)
	}
	return out
}

// ---------- Internal helpers ----------

// exec runs a parameterized Cypher statement that produces no result rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a Cypher statement and collects all result rows. Each row is
// a []any slice with values in column order.
func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error

	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// ---------- Type coercion helpers ----------
// KuzuDB returns typed Go values (int64, float64, bool, string). These
// helpers safely coerce any -> concrete type.

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
