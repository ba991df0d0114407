package domain

import (
	"strings"
	"time"
)

// Upstream task sources disagree on status spelling ("in-progress", "doing",
// "completed", ...). Everything collapses into the closed TaskStatus set at
// the boundary so the calculators only ever see canonical values.
var statusAliases = map[string]TaskStatus{
	"todo":        TaskTodo,
	"to_do":       TaskTodo,
	"to-do":       TaskTodo,
	"backlog":     TaskTodo,
	"open":        TaskTodo,
	"not_started": TaskTodo,
	"in_progress": TaskInProgress,
	"in-progress": TaskInProgress,
	"inprogress":  TaskInProgress,
	"doing":       TaskInProgress,
	"active":      TaskInProgress,
	"started":     TaskInProgress,
	"blocked":     TaskBlocked,
	"on_hold":     TaskBlocked,
	"on-hold":     TaskBlocked,
	"waiting":     TaskBlocked,
	"done":        TaskDone,
	"completed":   TaskDone,
	"complete":    TaskDone,
	"closed":      TaskDone,
	"finished":    TaskDone,
}

var priorityAliases = map[string]TaskPriority{
	"low":      PriorityLow,
	"lowest":   PriorityLow,
	"trivial":  PriorityLow,
	"medium":   PriorityMedium,
	"normal":   PriorityMedium,
	"default":  PriorityMedium,
	"high":     PriorityHigh,
	"major":    PriorityHigh,
	"urgent":   PriorityUrgent,
	"critical": PriorityUrgent,
	"highest":  PriorityUrgent,
}

// NormalizeStatus maps a raw status string onto the canonical enum.
// Unknown values fall back to todo rather than failing.
func NormalizeStatus(raw string) TaskStatus {
	if s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return TaskTodo
}

// NormalizePriority maps a raw priority string onto the canonical enum.
// Unknown values fall back to medium.
func NormalizePriority(raw string) TaskPriority {
	if p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return p
	}
	return PriorityMedium
}

// NormalizeType maps a raw type string onto the canonical enum.
// Unknown values fall back to the generic task type.
func NormalizeType(raw string) TaskType {
	v := strings.ToLower(strings.TrimSpace(raw))
	if ValidTaskTypes[v] {
		return TaskType(v)
	}
	return TypeTask
}

// timeLayouts are the timestamp formats accepted from upstream sources.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a timestamp in any accepted layout. Malformed or empty
// values normalize to nil; the calculators treat them as absent.
func ParseTime(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// DateOf truncates a timestamp to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
