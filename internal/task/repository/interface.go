package repository

import (
	"context"
	"time"

	"clickup-task-assistant/internal/task"
)

// TrackerRepository is the read-only surface of the external task tracker.
// All calls are point-in-time reads; no write operations exist.
type TrackerRepository interface {
	// GetTeamTasksPage fetches one page of the team-wide task endpoint
	// filtered to a single assignee. An empty slice means the page is empty.
	GetTeamTasksPage(ctx context.Context, assigneeID int, page int) ([]task.Task, error)

	// GetListTasks fetches all tasks of a single list.
	GetListTasks(ctx context.Context, listID string) ([]task.Task, error)

	// GetTimeEntries fetches time-tracking entries for an assignee within
	// [start, end].
	GetTimeEntries(ctx context.Context, assigneeID int, start, end time.Time) ([]task.TimeEntry, error)
}
