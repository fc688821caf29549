package clickup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clickup-task-assistant/internal/task/repository/clickup"
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

func TestGetTeamTasksPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/team/900/task", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "pk_test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if got := r.URL.Query().Get("assignees[]"); got != "42" {
			t.Errorf("assignees[] = %q, want 42", got)
		}
		if got := r.URL.Query().Get("subtasks"); got != "true" {
			t.Errorf("subtasks = %q, want true", got)
		}

		switch r.URL.Query().Get("page") {
		case "0":
			w.Write([]byte(`{"tasks": [
				{"id": "t1", "name": "Viết báo cáo", "status": {"status": "In Progress"}, "due_date": "1741700000000", "date_created": "1741000000000", "assignees": [{"id": 42, "username": "huy.tran"}], "url": "https://app.clickup.com/t/t1"},
				{"id": "t2", "name": "Review PR", "status": "to do", "due_date": null, "date_created": "1741000000000", "assignees": [], "url": ""}
			]}`))
		default:
			w.Write([]byte(`{"tasks": []}`))
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repo := clickup.New(clickup.NewClient(srv.URL, "pk_test"), "900", &mockLogger{})

	tasks, err := repo.GetTeamTasksPage(context.Background(), 42, 0)
	if err != nil {
		t.Fatalf("GetTeamTasksPage: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}

	// Duck-typed status: object shape and plain string both normalize.
	if got := tasks[0].Status.Normalized(); got != "in progress" {
		t.Errorf("status[0] = %q, want %q", got, "in progress")
	}
	if got := tasks[1].Status.Normalized(); got != "to do" {
		t.Errorf("status[1] = %q, want %q", got, "to do")
	}

	if _, ok, _ := tasks[1].DueTime(); ok {
		t.Error("t2 has no due date")
	}

	empty, err := repo.GetTeamTasksPage(context.Background(), 42, 1)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("page 1 should be empty, got %d", len(empty))
	}
}

func TestGetTeamTasksPage_MissingEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	repo := clickup.New(clickup.NewClient(srv.URL, "pk_test"), "900", &mockLogger{})
	tasks, err := repo.GetTeamTasksPage(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("missing tasks field must not be an error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks, want 0", len(tasks))
	}
}

func TestGetListTasks_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"err": "boom"}`))
	}))
	defer srv.Close()

	repo := clickup.New(clickup.NewClient(srv.URL, "pk_test"), "900", &mockLogger{})
	if _, err := repo.GetListTasks(context.Background(), "101"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestGetTimeEntries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/team/900/time_entries", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("assignee"); got != "42" {
			t.Errorf("assignee = %q, want 42", got)
		}
		if r.URL.Query().Get("start_date") == "" || r.URL.Query().Get("end_date") == "" {
			t.Error("start_date and end_date are required")
		}
		w.Write([]byte(`{"data": [
			{"id": "e1", "duration": "3600000", "task_name": "Viết báo cáo"},
			{"id": "e2", "duration": "1800000", "task_name": "Họp team"}
		]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repo := clickup.New(clickup.NewClient(srv.URL, "pk_test"), "900", &mockLogger{})
	entries, err := repo.GetTimeEntries(context.Background(), 42, time.Now().Add(-24*time.Hour), time.Now())
	if err != nil {
		t.Fatalf("GetTimeEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].DurationMillis() != 3600000 {
		t.Errorf("duration = %d, want 3600000", entries[0].DurationMillis())
	}
}
