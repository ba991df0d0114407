package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/domain"
)

// FormatTaskList formats tasks into a styled table.
func FormatTaskList(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}

	headers := []string{"ID", "TITLE", "STATUS", "PRIORITY", "DUE"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due := Dim("--")
		if t.DueDate != nil {
			due = RelativeDateStyled(*t.DueDate)
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			StyleFg.Render(t.Title),
			TaskStatusPill(t.Status),
			PriorityBadge(t.Priority),
			due,
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskDetail formats one task with its full fields.
func FormatTaskDetail(t *domain.Task) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(t.Title), Dim(string(t.Type))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("STATUS  "), TaskStatusPill(t.Status)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("PRIORITY"), PriorityBadge(t.Priority)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("ID      "), TruncID(t.ID)))
	if t.AssigneeID != nil {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("ASSIGNEE"), TruncID(*t.AssigneeID)))
	}
	if t.DueDate != nil {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("DUE     "), RelativeDateStyled(*t.DueDate)))
	}
	if t.EstimatedHours > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("ESTIMATE"), FormatHours(t.EstimatedHours)))
	}
	if len(t.BlockingTaskIDs) > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("BLOCKED "), Dim(strings.Join(t.BlockingTaskIDs, ", "))))
	}
	return b.String()
}

// FormatUserList formats team members into a styled table.
func FormatUserList(users []domain.User) string {
	if len(users) == 0 {
		return Dim("No users.") + "\n"
	}

	headers := []string{"ID", "NAME", "TEAM", "CAPACITY"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		team := Dim("--")
		if u.TeamID != "" {
			team = StylePurple.Render(u.TeamID)
		}
		rows = append(rows, []string{
			TruncID(u.ID),
			Bold(u.Name),
			team,
			Dim(fmt.Sprintf("%s/day", FormatHours(u.CapacityHours()))),
		})
	}
	return RenderTable(headers, rows)
}
