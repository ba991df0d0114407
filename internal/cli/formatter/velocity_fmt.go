package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
)

// sparkLevels are the bar glyphs for the daily throughput sparkline.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// FormatVelocity formats VelocityMetrics into a styled CLI summary.
func FormatVelocity(m *contract.VelocityMetrics) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n",
		Bold(fmt.Sprintf("%.2f tasks/day", m.AverageVelocity)),
		TrendArrow(m.Trend)))
	b.WriteString(Dim(fmt.Sprintf("team average %.2f tasks/day", m.TeamAverageVelocity)) + "\n\n")

	if len(m.Daily) > 0 {
		b.WriteString(renderSparkline(m.Daily) + "\n")
		first := m.Daily[0].Date
		last := m.Daily[len(m.Daily)-1].Date
		b.WriteString(Dim(fmt.Sprintf("%s … %s", first, last)) + "\n\n")
	}

	headers := []string{"DATE", "DONE", "NEW"}
	rows := make([][]string, 0, len(m.Daily))
	for _, p := range m.Daily {
		done := Dim("0")
		if p.Completed > 0 {
			done = StyleGreen.Render(fmt.Sprintf("%d", p.Completed))
		}
		created := Dim("0")
		if p.Created > 0 {
			created = StyleBlue.Render(fmt.Sprintf("%d", p.Created))
		}
		rows = append(rows, []string{StyleFg.Render(p.Date), done, created})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Velocity", b.String())
}

func renderSparkline(daily []contract.VelocityPoint) string {
	peak := 0
	for _, p := range daily {
		if p.Completed > peak {
			peak = p.Completed
		}
	}
	if peak == 0 {
		return StyleDim.Render(strings.Repeat(string(sparkLevels[0]), len(daily)))
	}

	var b strings.Builder
	for _, p := range daily {
		idx := p.Completed * (len(sparkLevels) - 1) / peak
		b.WriteRune(sparkLevels[idx])
	}
	return StyleGreen.Render(b.String())
}
