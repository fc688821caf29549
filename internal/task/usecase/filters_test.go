package usecase

import (
	"context"
	"testing"
	"time"

	"clickup-task-assistant/internal/task"
)

func TestOverdueIsCalendarDayBased(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	// Due earlier today: not overdue even though the timestamp has passed.
	earlier := taskDue("t1", "A", "to do", testNow.Add(-3*time.Hour))
	if got, _ := uc.isOverdue(earlier, testNow); got {
		t.Error("task due earlier today flagged as overdue")
	}
	if got, _ := uc.isDueToday(earlier, testNow); !got {
		t.Error("task due earlier today not flagged as due_today")
	}

	// Due yesterday 23:59 local: overdue.
	yesterday := taskDue("t2", "B", "to do",
		time.Date(2025, 3, 11, 23, 59, 0, 0, testNow.Location()))
	if got, _ := uc.isOverdue(yesterday, testNow); !got {
		t.Error("task due yesterday not flagged as overdue")
	}
	if got, _ := uc.isDueToday(yesterday, testNow); got {
		t.Error("task due yesterday flagged as due_today")
	}
}

func TestStuckRequiresAgeAndActiveStatus(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	cases := []struct {
		name string
		task task.Task
		want bool
	}{
		{"active and old", taskUndated("t1", "A", "In Progress", 48*time.Hour), true},
		{"vietnamese active and old", taskUndated("t2", "B", "Đang làm", 48*time.Hour), true},
		{"active but fresh", taskUndated("t3", "C", "to do", 2*time.Hour), false},
		{"closed status", taskUndated("t4", "D", "done", 48*time.Hour), false},
		{"has due date", taskDue("t5", "E", "to do", testNow.Add(24*time.Hour)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uc.isStuck(tc.task, testNow)
			if err != nil {
				t.Fatalf("isStuck: %v", err)
			}
			if got != tc.want {
				t.Errorf("isStuck = %v, want %v", got, tc.want)
			}
		})
	}
}

// A task is never overdue and due_today at the same time, and a stuck task
// never carries a due date.
func TestPredicatesAreMutuallyExclusive(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	tasks := []task.Task{
		taskDue("t1", "A", "in progress", testNow.Add(-72*time.Hour)),
		taskDue("t2", "B", "to do", testNow.Add(-1*time.Hour)),
		taskDue("t3", "C", "to do", testNow.Add(26*time.Hour)),
		taskUndated("t4", "D", "đang làm", 30*time.Hour),
		taskUndated("t5", "E", "done", 200*time.Hour),
	}
	for _, tk := range tasks {
		overdue, _ := uc.isOverdue(tk, testNow)
		dueToday, _ := uc.isDueToday(tk, testNow)
		stuck, _ := uc.isStuck(tk, testNow)

		if overdue && dueToday {
			t.Errorf("task %s both overdue and due_today", tk.ID)
		}
		if stuck && (overdue || dueToday) {
			t.Errorf("task %s stuck while carrying a due date", tk.ID)
		}
	}
}

func TestFilterTasksDropsUnparsableDates(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	bad := "not-a-number"
	tasks := []task.Task{
		{ID: "t1", Name: "A", Status: task.NewStatus("to do"), DueDate: &bad},
		taskDue("t2", "B", "to do", testNow.Add(-48*time.Hour)),
	}

	got := uc.filterTasks(context.Background(), tasks, task.FilterOverdue)
	if len(got) != 1 || got[0].ID != "t2" {
		t.Fatalf("filtered = %+v, want only t2", got)
	}
}

func TestFilterNoneIsIdentity(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	tasks := []task.Task{
		taskDue("t1", "A", "done", testNow.Add(-48*time.Hour)),
		taskUndated("t2", "B", "to do", time.Hour),
	}
	got := uc.filterTasks(context.Background(), tasks, task.FilterNone)
	if len(got) != 2 || got[0].ID != "t1" || got[1].ID != "t2" {
		t.Fatalf("filter none reordered or dropped tasks: %+v", got)
	}
}

func TestInProgressVocabulary(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	cases := []struct {
		status string
		want   bool
	}{
		{"In Progress", true},
		{"đang làm", true},
		{"doing", true},
		{"to do", false},
		{"done", false},
	}
	for _, tc := range cases {
		tk := taskUndated("t", "A", tc.status, time.Hour)
		if got, _ := uc.isInProgress(tk, testNow); got != tc.want {
			t.Errorf("isInProgress(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}
