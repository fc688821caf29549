package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clickup-task-assistant/internal/task"
)

func TestLoadPersonTasksStopsOnEmptyPage(t *testing.T) {
	repo := &mockRepo{pages: map[int][][]task.Task{
		101: {
			{taskDue("t1", "A", "to do", testNow.Add(24*time.Hour))},
			{taskDue("t2", "B", "to do", testNow.Add(24*time.Hour))},
		},
	}}
	uc := newTestUseCase(repo)

	got := uc.loadPersonTasks(context.Background(), 101)
	if len(got) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got))
	}
	// Two full pages plus the empty page that terminates the loop.
	if repo.teamCalls != 3 {
		t.Errorf("teamCalls = %d, want 3", repo.teamCalls)
	}
}

func TestLoadPersonTasksEmptyFirstPage(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	if got := uc.loadPersonTasks(context.Background(), 101); len(got) != 0 {
		t.Fatalf("got %d tasks, want 0", len(got))
	}
	if repo.teamCalls != 1 {
		t.Errorf("teamCalls = %d, want 1 (stop on the first empty page)", repo.teamCalls)
	}
}

func TestLoadPersonTasksPageFailureIsEndOfStream(t *testing.T) {
	repo := &mockRepo{
		pages: map[int][][]task.Task{
			101: {
				{taskDue("t1", "A", "to do", testNow.Add(24*time.Hour))},
				{taskDue("t2", "B", "to do", testNow.Add(24*time.Hour))},
			},
		},
		pageErrs: map[int]map[int]error{
			101: {1: errors.New("boom")},
		},
	}
	uc := newTestUseCase(repo)

	got := uc.loadPersonTasks(context.Background(), 101)
	if len(got) != 1 {
		t.Fatalf("got %d tasks, want 1 (partial result before the failed page)", len(got))
	}
}

func TestLoadPersonTasksHonorsPageCap(t *testing.T) {
	// Every page non-empty; the loop must stop at MaxPages.
	pages := make([][]task.Task, MaxPages+5)
	for i := range pages {
		pages[i] = []task.Task{taskDue("t", "A", "to do", testNow.Add(24*time.Hour))}
	}
	repo := &mockRepo{pages: map[int][][]task.Task{101: pages}}
	uc := newTestUseCase(repo)

	got := uc.loadPersonTasks(context.Background(), 101)
	if len(got) != MaxPages {
		t.Errorf("got %d tasks, want %d", len(got), MaxPages)
	}
	if repo.teamCalls != MaxPages {
		t.Errorf("teamCalls = %d, want %d", repo.teamCalls, MaxPages)
	}
}

func TestLoadAndFilterUnknownEntity(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	_, err := uc.LoadAndFilter(context.Background(), task.LoadAndFilterInput{
		Classification: task.QueryClassification{EntityType: "galaxy", FilterType: task.FilterNone},
	})
	if !errors.Is(err, task.ErrUnknownEntityType) {
		t.Fatalf("err = %v, want ErrUnknownEntityType", err)
	}
}

func TestLoadAndFilterUnknownMember(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	_, err := uc.LoadAndFilter(context.Background(), task.LoadAndFilterInput{
		Classification: task.QueryClassification{
			EntityType: task.EntityPerson,
			EntityName: "nobody",
			FilterType: task.FilterNone,
		},
	})
	if !errors.Is(err, task.ErrMemberNotFound) {
		t.Fatalf("err = %v, want ErrMemberNotFound", err)
	}
}

func TestLoadAndFilterDepartmentSkipsFailedList(t *testing.T) {
	repo := &mockRepo{
		listTasks: map[string][]task.Task{
			"list-be-2": {taskDue("t1", "A", "to do", testNow.Add(24*time.Hour))},
		},
		listErrs: map[string]error{"list-be-1": errors.New("boom")},
	}
	uc := newTestUseCase(repo)

	out, err := uc.LoadAndFilter(context.Background(), task.LoadAndFilterInput{
		Classification: task.QueryClassification{
			EntityType: task.EntityDepartment,
			EntityName: "Backend",
			FilterType: task.FilterNone,
		},
	})
	if err != nil {
		t.Fatalf("LoadAndFilter: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Errorf("got %d tasks, want 1", len(out.Tasks))
	}
	// The canonical name comes back regardless of how the user spelled it.
	if out.Department != "Backend" {
		t.Errorf("Department = %q, want Backend", out.Department)
	}
}

func TestLoadAndFilterDepartmentCanonicalName(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	out, err := uc.LoadAndFilter(context.Background(), task.LoadAndFilterInput{
		Classification: task.QueryClassification{
			EntityType: task.EntityDepartment,
			EntityName: "  backend ",
			FilterType: task.FilterNone,
		},
	})
	if err != nil {
		t.Fatalf("LoadAndFilter: %v", err)
	}
	if out.Department != "Backend" {
		t.Errorf("Department = %q, want Backend", out.Department)
	}
}

func TestLoadAndFilterUnknownDepartment(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	_, err := uc.LoadAndFilter(context.Background(), task.LoadAndFilterInput{
		Classification: task.QueryClassification{
			EntityType: task.EntityDepartment,
			EntityName: "Ngoại giao",
			FilterType: task.FilterNone,
		},
	})
	if !errors.Is(err, task.ErrDepartmentNotFound) {
		t.Fatalf("err = %v, want ErrDepartmentNotFound", err)
	}
}

// Two pages for one person, one task overdue by two days; the overdue filter
// must keep exactly that task and the leaderboard must flag its assignee.
func TestPersonOverdueEndToEnd(t *testing.T) {
	an := task.Assignee{ID: 101, Username: "an.nguyen"}
	repo := &mockRepo{pages: map[int][][]task.Task{
		101: {
			{
				taskDue("t1", "Viết báo cáo", "in progress", testNow.Add(-48*time.Hour), an),
				taskDue("t2", "Review PR", "to do", testNow.Add(24*time.Hour), an),
				taskDue("t3", "Họp team", "to do", testNow.Add(48*time.Hour), an),
			},
		},
	}}
	uc := newTestUseCase(repo)

	out, err := uc.LoadAndFilter(context.Background(), task.LoadAndFilterInput{
		Classification: task.QueryClassification{
			EntityType: task.EntityPerson,
			EntityName: "an.nguyen",
			FilterType: task.FilterOverdue,
		},
	})
	if err != nil {
		t.Fatalf("LoadAndFilter: %v", err)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].ID != "t1" {
		t.Fatalf("tasks = %+v, want exactly t1", out.Tasks)
	}
	if out.Person == nil || out.Person.ID != 101 {
		t.Errorf("person = %+v, want member 101", out.Person)
	}
	if !strings.Contains(out.HTML, "an.nguyen") {
		t.Errorf("report HTML missing the person name: %q", out.HTML)
	}

	board := uc.Leaderboard(out.Tasks)
	if !strings.Contains(board, "🔴 1") {
		t.Errorf("leaderboard = %q, want a single 🔴 for an.nguyen", board)
	}
	if !strings.Contains(board, "an.nguyen") {
		t.Errorf("leaderboard missing assignee name: %q", board)
	}
}

func TestRenderTaskReportEscapesHTML(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	tasks := []task.Task{taskDue("t1", "<script>alert(1)</script>", "to do", testNow)}
	got := uc.renderTaskReport(task.QueryClassification{
		EntityType: task.EntityAll,
		FilterType: task.FilterNone,
	}, nil, tasks)

	if strings.Contains(got, "<script>") {
		t.Errorf("report contains unescaped markup: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("report missing escaped task name: %q", got)
	}
}
