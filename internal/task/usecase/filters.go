package usecase

import (
	"context"
	"strings"
	"time"

	"clickup-task-assistant/internal/task"
)

// activeStatusMarkers flags a status as "active" for stuck detection.
// The board mixes Vietnamese and English status names; matching is
// case-insensitive substring.
var activeStatusMarkers = []string{
	"in progress",
	"to do",
	"open",
	"review",
	"đang làm",
	"cần làm",
	"chờ duyệt",
}

// workingStatusMarkers flags a status as actively being worked on.
var workingStatusMarkers = []string{
	"in progress",
	"doing",
	"đang làm",
}

// minStuckAge is how long an undated active task must exist before it counts
// as stuck.
const minStuckAge = 24 * time.Hour

func statusMatches(status task.Status, markers []string) bool {
	normalized := status.Normalized()
	for _, marker := range markers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}

// isOverdue: the due date's calendar day is strictly before today's, in the
// configured timezone.
func (uc *implUseCase) isOverdue(t task.Task, now time.Time) (bool, error) {
	due, ok, err := t.DueTime()
	if err != nil || !ok {
		return false, err
	}
	return uc.dm.BeforeDay(due, now), nil
}

// isDueToday: the due date falls on today's calendar day.
func (uc *implUseCase) isDueToday(t task.Task, now time.Time) (bool, error) {
	due, ok, err := t.DueTime()
	if err != nil || !ok {
		return false, err
	}
	return uc.dm.SameDay(due, now), nil
}

// isStuck: no due date, an active status, and at least one full day old.
// Statuses matching neither the active nor the working vocabulary are simply
// not stuck; they fall through every problem category.
func (uc *implUseCase) isStuck(t task.Task, now time.Time) (bool, error) {
	if t.DueDate != nil && *t.DueDate != "" {
		return false, nil
	}
	if !statusMatches(t.Status, activeStatusMarkers) {
		return false, nil
	}
	created, ok, err := t.CreatedTime()
	if err != nil || !ok {
		return false, err
	}
	return now.Sub(created) >= minStuckAge, nil
}

// isInProgress: the status matches the working vocabulary.
func (uc *implUseCase) isInProgress(t task.Task, _ time.Time) (bool, error) {
	return statusMatches(t.Status, workingStatusMarkers), nil
}

// filterTasks applies the filter predicate without reordering. A task whose
// dates fail to parse is logged with its identity and dropped from the
// result, never aborting the batch.
func (uc *implUseCase) filterTasks(ctx context.Context, tasks []task.Task, filter task.FilterType) []task.Task {
	if filter == task.FilterNone {
		return tasks
	}

	now := uc.now()
	predicate := uc.predicateFor(filter)

	var out []task.Task
	for _, t := range tasks {
		keep, err := predicate(t, now)
		if err != nil {
			uc.l.Warnf(ctx, "filterTasks: task=%s %q has unparsable dates, dropped: %v", t.ID, t.Name, err)
			continue
		}
		if keep {
			out = append(out, t)
		}
	}
	return out
}

func (uc *implUseCase) predicateFor(filter task.FilterType) func(task.Task, time.Time) (bool, error) {
	switch filter {
	case task.FilterOverdue:
		return uc.isOverdue
	case task.FilterDueToday:
		return uc.isDueToday
	case task.FilterStuck:
		return uc.isStuck
	case task.FilterInProgress:
		return uc.isInProgress
	}
	return func(task.Task, time.Time) (bool, error) { return true, nil }
}
