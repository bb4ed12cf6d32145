package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/commgraph/communitysearch/internal/config"
	"github.com/commgraph/communitysearch/internal/export"
	"github.com/commgraph/communitysearch/internal/mcptools"
	"github.com/commgraph/communitysearch/internal/search"
	"github.com/commgraph/communitysearch/internal/store"
	"github.com/commgraph/communitysearch/internal/truss"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	Store     string
	Nodes     string
	K         int
	D         int
	Seed      bool
	Output    string
	Mermaid   string
	ServeMCP  bool
	Verbose   bool
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("communitysearch", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory holding communitysearch.yml")
	fs.StringVar(&flags.Store, "store", "", "store backend: memory, kuzu, or neo4j (overrides config)")
	fs.StringVar(&flags.Nodes, "nodes", "", "comma-separated query node ids")
	fs.IntVar(&flags.K, "k", 0, "truss cohesion parameter (overrides config)")
	fs.IntVar(&flags.D, "d", 0, "hop-distance bound (overrides config)")
	fs.BoolVar(&flags.Seed, "seed", false, "load the demo social graph into the store before querying")
	fs.StringVar(&flags.Output, "output", "", "write results as JSON to this path")
	fs.StringVar(&flags.Mermaid, "mermaid", "", "write a Mermaid diagram of the community to this path (single node only)")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as an MCP server on stdio")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, &flags)

	log := logrus.New()
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if flags.Seed {
		seeder, ok := st.(store.Seeder)
		if !ok {
			return fmt.Errorf("store %q does not accept seed data", cfg.Store)
		}
		if err := store.Seed(context.Background(), seeder); err != nil {
			return err
		}
		log.Info("demo graph seeded")
	}

	svc := search.NewService(st, truss.NewMaintainer(), truss.NewExtractor(), log)

	if flags.ServeMCP {
		mcpSvc := mcptools.NewCommunityService(svc, st, cfg.DefaultK, cfg.DefaultD)
		return mcptools.RunMCPServerStdio(context.Background(), mcptools.NewCommunityMCPServer(mcpSvc))
	}

	ids, err := parseNodeIDs(flags.Nodes)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("no query nodes given: use -nodes or -serve-mcp")
	}
	if flags.Mermaid != "" && len(ids) > 1 {
		return fmt.Errorf("-mermaid supports a single query node")
	}

	results, err := searchAll(context.Background(), svc, ids, cfg.DefaultK, cfg.DefaultD)
	if err != nil {
		return err
	}

	for _, r := range results {
		printSummary(r)
	}
	if flags.Output != "" {
		if err := export.WriteJSON(flags.Output, results); err != nil {
			return err
		}
	}
	if flags.Mermaid != "" {
		if err := os.WriteFile(flags.Mermaid, []byte(export.Mermaid(results[0])), 0o644); err != nil {
			return fmt.Errorf("write mermaid %s: %w", flags.Mermaid, err)
		}
	}
	return nil
}

// applyFlagOverrides merges CLI flags over the loaded config; flags win.
func applyFlagOverrides(cfg *config.Config, flags *cliFlags) {
	if flags.Store != "" {
		cfg.Store = flags.Store
	}
	if cfg.Store == "" {
		cfg.Store = "memory"
	}
	if flags.K > 0 {
		cfg.DefaultK = flags.K
	}
	if cfg.DefaultK <= 0 {
		cfg.DefaultK = 3
	}
	if flags.D > 0 {
		cfg.DefaultD = flags.D
	}
	if cfg.DefaultD <= 0 {
		cfg.DefaultD = 2
	}
	if flags.Verbose {
		cfg.Verbose = true
	}
}

// openStore selects the property-graph backend from the config.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store {
	case "memory":
		return store.NewMemStore(), nil
	case "kuzu":
		return openKuzuStore(cfg.KuzuPath)
	case "neo4j":
		return store.NewNeo4jStore(cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Store)
	}
}

// parseNodeIDs splits the -nodes flag into int64 identifiers.
func parseNodeIDs(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid node id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// searchAll runs one community search per node id. Queries share no
// mutable state, so they run concurrently; the first failure cancels the
// rest and propagates.
func searchAll(ctx context.Context, svc *search.Service, ids []int64, k, d int) ([]*search.CommunityResult, error) {
	results := make([]*search.CommunityResult, len(ids))
	eg, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		eg.Go(func() error {
			r, err := svc.SearchCommunity(ctx, k, d, id)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// printSummary writes a one-result human summary to stdout.
func printSummary(r *search.CommunityResult) {
	fmt.Printf("node %d: community of %d (tightness %.2f, %d ms)\n",
		r.QueryNodeID, r.CommunitySize, r.StructuralTightness, r.ResponseTimeMs)
	if r.JaccardSimilarity != nil {
		fmt.Printf("  jaccard %.3f  cosine %.3f\n", *r.JaccardSimilarity, *r.CosineSimilarity)
	}
	if r.Centrality != nil {
		fmt.Printf("  centrality %.3f\n", *r.Centrality)
	}
}
