package export

import (
	"fmt"
	"strings"

	"github.com/commgraph/communitysearch/internal/search"
)

// Mermaid produces a Mermaid graph TD diagram of the community. The query
// node is double-bracketed and edges carry their weight as a label.
func Mermaid(result *search.CommunityResult) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, n := range result.Nodes {
		if n.IsQueryNode {
			fmt.Fprintf(&sb, "    N%d[[\"%d (query)\"]]\n", n.ID, n.ID)
		} else {
			fmt.Fprintf(&sb, "    N%d[\"%d\"]\n", n.ID, n.ID)
		}
	}

	for _, e := range result.Edges {
		fmt.Fprintf(&sb, "    N%d -->|%.2f| N%d\n", e.Source, e.Weight, e.Target)
	}

	return sb.String()
}
