package usecase

import (
	"context"
	"strconv"
	"time"

	"clickup-task-assistant/internal/directory"
	"clickup-task-assistant/internal/task"
	"clickup-task-assistant/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo serves canned pages per assignee and records call counts.
type mockRepo struct {
	pages       map[int][][]task.Task // assigneeID → pages
	pageErrs    map[int]map[int]error // assigneeID → page → error
	listTasks   map[string][]task.Task
	listErrs    map[string]error
	timeEntries []task.TimeEntry
	timeErr     error

	teamCalls int
	lastStart time.Time
	lastEnd   time.Time
}

func (m *mockRepo) GetTeamTasksPage(ctx context.Context, assigneeID, page int) ([]task.Task, error) {
	m.teamCalls++
	if errs, ok := m.pageErrs[assigneeID]; ok {
		if err, ok := errs[page]; ok {
			return nil, err
		}
	}
	pages := m.pages[assigneeID]
	if page >= len(pages) {
		return nil, nil
	}
	return pages[page], nil
}

func (m *mockRepo) GetListTasks(ctx context.Context, listID string) ([]task.Task, error) {
	if err, ok := m.listErrs[listID]; ok {
		return nil, err
	}
	return m.listTasks[listID], nil
}

func (m *mockRepo) GetTimeEntries(ctx context.Context, assigneeID int, start, end time.Time) ([]task.TimeEntry, error) {
	m.lastStart, m.lastEnd = start, end
	if m.timeErr != nil {
		return nil, m.timeErr
	}
	return m.timeEntries, nil
}

// testNow pins the clock to 2025-03-12 10:00 in Ho Chi Minh City, a Wednesday.
var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, mustLocation())

func mustLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		panic(err)
	}
	return loc
}

var testDirectory = &directory.Directory{
	Departments: []directory.Department{
		{Name: "Backend", Lists: []string{"list-be-1", "list-be-2"}},
	},
	Members: []directory.Member{
		{ID: 101, Username: "an.nguyen", Email: "an@example.com", Role: "dev", Department: "Backend"},
		{ID: 102, Username: "binh.tran", Email: "binh@example.com", Role: "dev", Department: "Backend"},
	},
}

func newTestUseCase(repo *mockRepo) *implUseCase {
	dm, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		panic(err)
	}
	return &implUseCase{
		l:    &mockLogger{},
		repo: repo,
		dir:  testDirectory,
		dm:   dm,
		now:  func() time.Time { return testNow },
	}
}

// millisString renders a time as the tracker's epoch-millis string field.
func millisString(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func taskDue(id, name, status string, due time.Time, assignees ...task.Assignee) task.Task {
	d := millisString(due)
	return task.Task{
		ID:          id,
		Name:        name,
		Status:      task.NewStatus(status),
		DueDate:     &d,
		DateCreated: millisString(testNow.Add(-72 * time.Hour)),
		Assignees:   assignees,
	}
}

func taskUndated(id, name, status string, createdAgo time.Duration, assignees ...task.Assignee) task.Task {
	return task.Task{
		ID:          id,
		Name:        name,
		Status:      task.NewStatus(status),
		DateCreated: millisString(testNow.Add(-createdAgo)),
		Assignees:   assignees,
	}
}
