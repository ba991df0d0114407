package importer

import "fmt"

// ValidateSnapshotSchema checks the import schema for structural errors
// before conversion. Returns a slice of all errors found. Soft fields
// (status, priority, type, dates) are deliberately not checked here; the
// converter normalizes them instead.
func ValidateSnapshotSchema(schema *SnapshotSchema) []error {
	var errs []error

	userIDs := make(map[string]bool)
	errs = append(errs, validateUsers(schema.Users, userIDs)...)

	taskIDs := make(map[string]bool)
	errs = append(errs, validateTasks(schema.Tasks, userIDs, taskIDs)...)

	errs = append(errs, validateBlockerRefs(schema.Tasks, taskIDs)...)

	return errs
}

func validateUsers(users []UserImport, userIDs map[string]bool) []error {
	var errs []error

	for i, u := range users {
		prefix := fmt.Sprintf("users[%d]", i)

		if u.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if userIDs[u.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, u.ID))
		} else {
			userIDs[u.ID] = true
		}

		if u.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if u.DailyCapacityHours != nil && *u.DailyCapacityHours <= 0 {
			errs = append(errs, fmt.Errorf("%s.daily_capacity_hours must be positive", prefix))
		}
	}

	return errs
}

func validateTasks(tasks []TaskImport, userIDs, taskIDs map[string]bool) []error {
	var errs []error

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if taskIDs[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		} else {
			taskIDs[t.ID] = true
		}

		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.AssigneeID != nil && *t.AssigneeID != "" && !userIDs[*t.AssigneeID] {
			errs = append(errs, fmt.Errorf("%s.assignee_id: user %q not found in users", prefix, *t.AssigneeID))
		}
		if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_hours must not be negative", prefix))
		}
	}

	return errs
}

// validateBlockerRefs runs after all task ids are collected so forward
// references are legal. Blocker cycles are allowed; the detectors handle
// them, so they are data, not errors.
func validateBlockerRefs(tasks []TaskImport, taskIDs map[string]bool) []error {
	var errs []error

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		for _, ref := range t.BlockedBy {
			if ref == "" {
				errs = append(errs, fmt.Errorf("%s.blocked_by: empty task id", prefix))
				continue
			}
			if ref == t.ID {
				errs = append(errs, fmt.Errorf("%s.blocked_by: task %q blocks itself", prefix, t.ID))
				continue
			}
			if !taskIDs[ref] {
				errs = append(errs, fmt.Errorf("%s.blocked_by: task %q not found in tasks", prefix, ref))
			}
		}
	}

	return errs
}
