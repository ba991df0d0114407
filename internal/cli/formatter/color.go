package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreColor returns the style for a 0-100 score value.
func ScoreColor(score float64) lipgloss.Style {
	switch {
	case score >= 70:
		return StyleGreen
	case score >= 40:
		return StyleYellow
	default:
		return StyleRed
	}
}

// TrendArrow returns a colored arrow for a trend direction.
func TrendArrow(trend domain.TrendDirection) string {
	switch trend {
	case domain.TrendUp:
		return StyleGreen.Render("▲ up")
	case domain.TrendDown:
		return StyleRed.Render("▼ down")
	default:
		return StyleDim.Render("→ stable")
	}
}

// ImpactBadge returns a colored impact indicator such as "● HIGH".
func ImpactBadge(impact domain.ImpactLevel) string {
	switch impact {
	case domain.ImpactHigh:
		return StyleRed.Render("● HIGH")
	case domain.ImpactMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.ImpactLow:
		return StyleGreen.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// WorkloadPill returns a colored workload status indicator.
func WorkloadPill(status domain.WorkloadStatus) string {
	switch status {
	case domain.WorkloadOverloaded:
		return StyleRed.Render("▲ Overloaded")
	case domain.WorkloadAtCapacity:
		return StyleYellow.Render("● At capacity")
	case domain.WorkloadAvailable:
		return StyleGreen.Render("● Available")
	default:
		return StyleDim.Render(string(status))
	}
}

// TaskStatusPill returns a colored status indicator for a task.
func TaskStatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskTodo:
		return StyleBlue.Render("○ Todo")
	case domain.TaskInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.TaskBlocked:
		return StyleRed.Render("⊘ Blocked")
	case domain.TaskDone:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

// PriorityBadge returns a colored priority label.
func PriorityBadge(p domain.TaskPriority) string {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed.Render("URGENT")
	case domain.PriorityHigh:
		return StyleYellow.Render("HIGH")
	case domain.PriorityMedium:
		return StyleFg.Render("MED")
	case domain.PriorityLow:
		return StyleDim.Render("LOW")
	default:
		return StyleDim.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
