package task

import (
	"context"
	"time"

	"clickup-task-assistant/internal/directory"
	"clickup-task-assistant/pkg/datemath"
)

// UseCase is the task query surface consumed by the agent tools and the
// delivery layer.
type UseCase interface {
	// LoadAndFilter resolves the classification to tasks and renders the
	// user-facing HTML report.
	LoadAndFilter(ctx context.Context, input LoadAndFilterInput) (LoadAndFilterOutput, error)

	// TimeTracked sums tracked time for a person over a named period.
	TimeTracked(ctx context.Context, input TimeTrackedInput) (TimeTrackedOutput, error)

	// Leaderboard aggregates tasks into the ranked per-assignee problem
	// summary.
	Leaderboard(tasks []Task) string

	// ProblemTasks triages tasks into the problem subset with computed
	// problem type and priority.
	ProblemTasks(tasks []Task) []ProblemTask
}

// LoadAndFilterInput carries one classification, consumed once.
type LoadAndFilterInput struct {
	Classification QueryClassification
}

// LoadAndFilterOutput is the retrieval pipeline result.
type LoadAndFilterOutput struct {
	Tasks []Task
	HTML  string

	// Person is set when the classification resolved to a named roster
	// member, so the caller can update session context.
	Person *directory.Member

	// Department is the canonical department name when the classification
	// resolved to one.
	Department string
}

// TimeTrackedInput identifies a person and a reporting window.
type TimeTrackedInput struct {
	PersonID   string
	PersonName string
	Period     datemath.Period
}

// TimeTrackedOutput is the time-tracking report.
type TimeTrackedOutput struct {
	TotalMillis int64
	EntryCount  int
	Start       time.Time
	End         time.Time
	HTML        string

	// Person is the resolved roster member the report is about.
	Person *directory.Member
}

// ProblemTask is a triaged task fed back to the model when a raw result is
// too large.
type ProblemTask struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	URL             string   `json:"url"`
	Assignees       []string `json:"assignees"`
	ProblemType     string   `json:"problem_type"`     // hard_overdue | due_today | stuck
	ProblemPriority int      `json:"problem_priority"` // 1 is most urgent
}
