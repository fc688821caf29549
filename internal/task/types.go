package task

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// EntityType is the subject of a query.
type EntityType string

const (
	EntityPerson     EntityType = "person"
	EntityDepartment EntityType = "department"
	EntityAll        EntityType = "all"
)

// Valid reports whether e is a known entity type.
func (e EntityType) Valid() bool {
	switch e {
	case EntityPerson, EntityDepartment, EntityAll:
		return true
	}
	return false
}

// FilterType narrows a task list to a problem category.
type FilterType string

const (
	FilterOverdue    FilterType = "overdue"
	FilterStuck      FilterType = "stuck"
	FilterDueToday   FilterType = "due_today"
	FilterInProgress FilterType = "in_progress"
	FilterNone       FilterType = "none"
)

// Valid reports whether f is a known filter type.
func (f FilterType) Valid() bool {
	switch f {
	case FilterOverdue, FilterStuck, FilterDueToday, FilterInProgress, FilterNone:
		return true
	}
	return false
}

// QueryClassification is the structured query produced from the LLM's
// tool-call arguments. Immutable once constructed, consumed exactly once.
type QueryClassification struct {
	EntityType EntityType
	EntityID   string
	EntityName string
	FilterType FilterType
}

// Status is the ClickUp status field, which arrives either as a plain string
// or as an object {"status": "...", "color": ...}. Comparisons must go
// through Normalized, never the raw value.
type Status struct {
	raw string
}

// NewStatus builds a Status from a plain label (used by tests and fixtures).
func NewStatus(label string) Status {
	return Status{raw: label}
}

// UnmarshalJSON accepts both the plain-string and the nested-object shape.
func (s *Status) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		s.raw = plain
		return nil
	}

	var structured struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return err
	}
	s.raw = structured.Status
	return nil
}

// MarshalJSON writes the plain-string shape.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.raw)
}

// Normalized returns the status as a trimmed lowercase string.
func (s Status) Normalized() string {
	return strings.ToLower(strings.TrimSpace(s.raw))
}

// Assignee is one person assigned to a task.
type Assignee struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// DisplayName resolves the assignee identity: username, then email, then the
// stringified numeric id.
func (a Assignee) DisplayName() string {
	if a.Username != "" {
		return a.Username
	}
	if a.Email != "" {
		return a.Email
	}
	return strconv.Itoa(a.ID)
}

// NamedRef is a hierarchical location reference (list/folder/space).
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task is the normalized ClickUp task record.
type Task struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      Status     `json:"status"`
	DueDate     *string    `json:"due_date"`     // epoch millis as string, or null
	DateCreated string     `json:"date_created"` // epoch millis as string
	Assignees   []Assignee `json:"assignees"`
	List        *NamedRef  `json:"list,omitempty"`
	Folder      *NamedRef  `json:"folder,omitempty"`
	Space       *NamedRef  `json:"space,omitempty"`
	URL         string     `json:"url"`
}

// DueTime parses the due date. ok is false when the task has no due date.
func (t Task) DueTime() (due time.Time, ok bool, err error) {
	if t.DueDate == nil || *t.DueDate == "" {
		return time.Time{}, false, nil
	}
	millis, err := strconv.ParseInt(*t.DueDate, 10, 64)
	if err != nil {
		return time.Time{}, false, err
	}
	return time.UnixMilli(millis), true, nil
}

// CreatedTime parses the creation date. ok is false when absent.
func (t Task) CreatedTime() (created time.Time, ok bool, err error) {
	if t.DateCreated == "" {
		return time.Time{}, false, nil
	}
	millis, err := strconv.ParseInt(t.DateCreated, 10, 64)
	if err != nil {
		return time.Time{}, false, err
	}
	return time.UnixMilli(millis), true, nil
}

// Location renders the task's hierarchy as "Space / Folder / List", skipping
// absent levels.
func (t Task) Location() string {
	var parts []string
	for _, ref := range []*NamedRef{t.Space, t.Folder, t.List} {
		if ref != nil && ref.Name != "" {
			parts = append(parts, ref.Name)
		}
	}
	return strings.Join(parts, " / ")
}

// TimeEntry is one ClickUp time-tracking record.
type TimeEntry struct {
	ID       string `json:"id"`
	Duration string `json:"duration"` // millis as string
	Start    string `json:"start"`
	TaskName string `json:"task_name"`
}

// DurationMillis parses the entry duration, 0 on malformed input.
func (e TimeEntry) DurationMillis() int64 {
	millis, err := strconv.ParseInt(e.Duration, 10, 64)
	if err != nil {
		return 0
	}
	return millis
}
