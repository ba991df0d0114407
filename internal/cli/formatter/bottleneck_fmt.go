package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

// bottleneckLabels maps detector types to display names.
var bottleneckLabels = map[domain.BottleneckType]string{
	domain.BottleneckStalledTasks:      "Stalled tasks",
	domain.BottleneckOverdueCluster:    "Overdue cluster",
	domain.BottleneckBlockedChain:      "Blocked chain",
	domain.BottleneckMissingAssignment: "Missing assignment",
	domain.BottleneckDecisionDelay:     "Decision delay",
}

// FormatBottlenecks formats detected bottlenecks into a styled CLI report.
func FormatBottlenecks(found []contract.Bottleneck) string {
	if len(found) == 0 {
		return RenderBox("Bottlenecks", StyleGreen.Render("No bottlenecks detected.")+"\n"+Dim("Your work is flowing."))
	}

	var b strings.Builder
	for i, bn := range found {
		label := bottleneckLabels[bn.Type]
		if label == "" {
			label = string(bn.Type)
		}

		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			ImpactBadge(bn.Impact),
			Bold(label),
			Dim(fmt.Sprintf("(%d tasks)", bn.Count))))
		b.WriteString("  " + StyleFg.Render(bn.Suggestion) + "\n")

		ids := bn.AffectedTaskIDs
		const maxShown = 5
		if len(ids) > maxShown {
			ids = ids[:maxShown]
		}
		shown := make([]string, len(ids))
		for j, id := range ids {
			shown[j] = id
		}
		line := strings.Join(shown, ", ")
		if len(bn.AffectedTaskIDs) > maxShown {
			line += fmt.Sprintf(", +%d more", len(bn.AffectedTaskIDs)-maxShown)
		}
		b.WriteString("  " + Dim(line) + "\n")

		if i < len(found)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Bottlenecks", b.String())
}
