package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotSchema is the top-level JSON structure for a work snapshot import.
type SnapshotSchema struct {
	Users []UserImport `json:"users,omitempty"`
	Tasks []TaskImport `json:"tasks"`
}

// UserImport defines one team member in the import file.
type UserImport struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	TeamID             string   `json:"team_id,omitempty"`
	DailyCapacityHours *float64 `json:"daily_capacity_hours,omitempty"`
}

// TaskImport defines one task in the import file. Status, priority, type
// and timestamps are free-form strings; unknown or malformed values are
// repaired during conversion rather than rejected.
type TaskImport struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Type           string   `json:"type,omitempty"`
	Status         string   `json:"status,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	AssigneeID     *string  `json:"assignee_id,omitempty"`
	InitiativeID   *string  `json:"initiative_id,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
	FocusDate      *string  `json:"focus_date,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	BlockedBy      []string `json:"blocked_by,omitempty"`
	CreatedAt      *string  `json:"created_at,omitempty"`
	UpdatedAt      *string  `json:"updated_at,omitempty"`
	CompletedAt    *string  `json:"completed_at,omitempty"`
}

// LoadSnapshotSchema reads and parses a snapshot import JSON file.
func LoadSnapshotSchema(path string) (*SnapshotSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema SnapshotSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
