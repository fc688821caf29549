package clickup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"clickup-task-assistant/internal/task"
	"clickup-task-assistant/internal/task/repository"
	pkgLog "clickup-task-assistant/pkg/log"
)

type repo struct {
	client *Client
	teamID string
	l      pkgLog.Logger
}

// New creates the ClickUp-backed tracker repository.
func New(client *Client, teamID string, l pkgLog.Logger) repository.TrackerRepository {
	return &repo{
		client: client,
		teamID: teamID,
		l:      l,
	}
}

// tasksEnvelope is the response wrapper of the task endpoints. A missing
// tasks field is an empty result, not an error.
type tasksEnvelope struct {
	Tasks []task.Task `json:"tasks"`
}

// timeEntriesEnvelope wraps GET /team/{id}/time_entries.
type timeEntriesEnvelope struct {
	Data []task.TimeEntry `json:"data"`
}

// GetTeamTasksPage implements repository.TrackerRepository.
func (r *repo) GetTeamTasksPage(ctx context.Context, assigneeID int, page int) ([]task.Task, error) {
	query := url.Values{}
	query.Set("assignees[]", strconv.Itoa(assigneeID))
	query.Set("subtasks", "true")
	query.Set("archived", "false")
	query.Set("page", strconv.Itoa(page))

	body, err := r.client.get(ctx, fmt.Sprintf("/team/%s/task", r.teamID), query)
	if err != nil {
		return nil, err
	}

	var envelope tasksEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("clickup: failed to decode team tasks: %w", err)
	}
	return envelope.Tasks, nil
}

// GetListTasks implements repository.TrackerRepository.
func (r *repo) GetListTasks(ctx context.Context, listID string) ([]task.Task, error) {
	query := url.Values{}
	query.Set("archived", "false")
	query.Set("subtasks", "true")

	body, err := r.client.get(ctx, fmt.Sprintf("/list/%s/task", listID), query)
	if err != nil {
		return nil, err
	}

	var envelope tasksEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("clickup: failed to decode list tasks: %w", err)
	}
	return envelope.Tasks, nil
}

// GetTimeEntries implements repository.TrackerRepository.
func (r *repo) GetTimeEntries(ctx context.Context, assigneeID int, start, end time.Time) ([]task.TimeEntry, error) {
	query := url.Values{}
	query.Set("start_date", strconv.FormatInt(start.UnixMilli(), 10))
	query.Set("end_date", strconv.FormatInt(end.UnixMilli(), 10))
	query.Set("assignee", strconv.Itoa(assigneeID))

	body, err := r.client.get(ctx, fmt.Sprintf("/team/%s/time_entries", r.teamID), query)
	if err != nil {
		return nil, err
	}

	var envelope timeEntriesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("clickup: failed to decode time entries: %w", err)
	}
	return envelope.Data, nil
}
