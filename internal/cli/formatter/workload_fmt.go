package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
)

const workloadBarWidth = 12

// FormatWorkload formats a TeamWorkload into a styled CLI summary.
func FormatWorkload(w *contract.TeamWorkload) string {
	var b strings.Builder

	headers := []string{"MEMBER", "LOAD", "STATUS", "TASKS", "HOURS"}
	rows := make([][]string, 0, len(w.Members))
	for _, m := range w.Members {
		rows = append(rows, []string{
			Bold(m.UserID),
			RenderAllocation(m.Allocation, workloadBarWidth),
			WorkloadPill(m.Status),
			StyleFg.Render(fmt.Sprintf("%d", m.TaskCount)),
			Dim(fmt.Sprintf("%s / %s", FormatHours(m.HoursAllocated), FormatHours(m.HoursCapacity))),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim("Team average"),
		Bold(fmt.Sprintf("%.0f%%", w.TeamAverage))))

	if w.OverloadedCount > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d overloaded", w.OverloadedCount)) + "\n")
	}
	if w.UnderutilizedCount > 0 {
		b.WriteString(StyleBlue.Render(fmt.Sprintf("%d with spare capacity", w.UnderutilizedCount)) + "\n")
	}

	return RenderBox("Team Workload", b.String())
}
