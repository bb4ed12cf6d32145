// Package export renders community search results for presentation:
// pretty-printed JSON files and Mermaid diagrams.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/commgraph/communitysearch/internal/search"
)

// ResultsExport is the top-level JSON export structure.
type ResultsExport struct {
	ExportedAt string                    `json:"exportedAt"`
	Results    []*search.CommunityResult `json:"results"`
}

// WriteJSON writes the results as indented JSON to path, creating parent
// directories as needed.
func WriteJSON(path string, results []*search.CommunityResult) error {
	payload := ResultsExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Results:    results,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal results: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
