package importer

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// GeneratedSnapshot holds the domain objects produced from a snapshot
// schema, ready for persistence.
type GeneratedSnapshot struct {
	Users []*domain.User
	Tasks []*domain.Task
}

// Convert transforms a validated SnapshotSchema into domain objects.
// Call ValidateSnapshotSchema first; Convert assumes the schema is
// structurally valid. Soft fields are repaired here: unknown statuses
// fall back to todo, unknown priorities to medium, malformed timestamps
// to absent.
func Convert(schema *SnapshotSchema, now time.Time) *GeneratedSnapshot {
	users := make([]*domain.User, 0, len(schema.Users))
	for _, u := range schema.Users {
		capacity := domain.DefaultDailyCapacityHours
		if u.DailyCapacityHours != nil {
			capacity = *u.DailyCapacityHours
		}
		users = append(users, &domain.User{
			ID:                 u.ID,
			Name:               u.Name,
			TeamID:             u.TeamID,
			DailyCapacityHours: capacity,
			CreatedAt:          now,
		})
	}

	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for _, t := range schema.Tasks {
		task := &domain.Task{
			ID:              t.ID,
			Title:           t.Title,
			Type:            domain.NormalizeType(t.Type),
			Status:          domain.NormalizeStatus(t.Status),
			Priority:        domain.NormalizePriority(t.Priority),
			AssigneeID:      nonEmptyPtr(t.AssigneeID),
			InitiativeID:    nonEmptyPtr(t.InitiativeID),
			DueDate:         parseOptionalTime(t.DueDate),
			FocusDate:       parseOptionalTime(t.FocusDate),
			BlockingTaskIDs: append([]string(nil), t.BlockedBy...),
			CreatedAt:       timeOrDefault(t.CreatedAt, now),
			UpdatedAt:       timeOrDefault(t.UpdatedAt, now),
			CompletedAt:     parseOptionalTime(t.CompletedAt),
		}
		if t.EstimatedHours != nil {
			task.EstimatedHours = *t.EstimatedHours
		}
		task.Normalize(now)
		tasks = append(tasks, task)
	}

	return &GeneratedSnapshot{Users: users, Tasks: tasks}
}

func nonEmptyPtr(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func parseOptionalTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	return domain.ParseTime(*s)
}

func timeOrDefault(s *string, fallback time.Time) time.Time {
	if ts := parseOptionalTime(s); ts != nil {
		return *ts
	}
	return fallback
}
