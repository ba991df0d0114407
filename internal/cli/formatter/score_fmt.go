package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
)

const scoreBarWidth = 20

// FormatScore formats an ExecutionScore into a styled CLI summary.
func FormatScore(score *contract.ExecutionScore) string {
	var b strings.Builder

	headline := ScoreColor(score.Current).Bold(true).Render(fmt.Sprintf("%.0f", score.Current))
	b.WriteString(fmt.Sprintf("%s %s  %s\n", headline, Dim("/ 100"), TrendArrow(score.Trend)))
	b.WriteString(RenderProgress(score.Current/100, scoreBarWidth))
	b.WriteString("\n\n")

	delta := score.VsLastWeek
	deltaStr := StyleDim.Render("no change vs last week")
	if delta > 0 {
		deltaStr = StyleGreen.Render(fmt.Sprintf("+%.1f%% vs last week", delta))
	} else if delta < 0 {
		deltaStr = StyleRed.Render(fmt.Sprintf("%.1f%% vs last week", delta))
	}
	b.WriteString(deltaStr + "\n\n")

	b.WriteString(Header("Breakdown") + "\n")
	rows := [][]string{
		{"Completion", fmt.Sprintf("%.1f%%", score.Breakdown.CompletionRate)},
		{"On time", fmt.Sprintf("%.1f%%", score.Breakdown.OnTimeRate)},
		{"Velocity", fmt.Sprintf("%.0f", score.Breakdown.VelocityScore)},
		{"Quality", fmt.Sprintf("%.0f", score.Breakdown.QualityScore)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("%-12s", row[0])), StyleFg.Render(row[1])))
	}

	b.WriteString("\n")
	streak := fmt.Sprintf("%d day", score.Streak.Current)
	if score.Streak.Current != 1 {
		streak += "s"
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		StyleYellow.Render("🔥"),
		Bold(streak),
		Dim(fmt.Sprintf("streak (best %d)", score.Streak.Best))))

	return RenderBox("Execution Score", b.String())
}
