package usecase

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"clickup-task-assistant/internal/task"
)

const leaderboardSize = 5

// noProblemsMessage is returned when no assignee has any problem task.
const noProblemsMessage = "✅ Tuyệt vời! Hiện tại không có task nào quá hạn, bị kẹt hay đến hạn hôm nay."

type assigneeStats struct {
	name        string
	hardOverdue int
	stuck       int
	dueToday    int

	// departments collects where the assignee's problem tasks live,
	// resolved from each task's list.
	departments map[string]struct{}
}

func (s assigneeStats) total() int {
	return s.hardOverdue + s.stuck + s.dueToday
}

var medals = []string{"🥇", "🥈", "🥉"}

// Leaderboard aggregates problem tasks per assignee and renders a ranked
// top-5 report. Ties keep first-seen order; assignees with nothing to report
// are dropped entirely.
func (uc *implUseCase) Leaderboard(tasks []task.Task) string {
	stats, order := uc.collectAssigneeStats(tasks)

	ranked := make([]*assigneeStats, 0, len(order))
	for _, name := range order {
		if stats[name].total() > 0 {
			ranked = append(ranked, stats[name])
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total() > ranked[j].total()
	})

	if len(ranked) == 0 {
		return noProblemsMessage
	}

	var b strings.Builder
	b.WriteString("<b>🏆 Bảng xếp hạng task cần chú ý</b>\n")

	top := ranked
	if len(top) > leaderboardSize {
		top = top[:leaderboardSize]
	}

	for i, s := range top {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		fmt.Fprintf(&b, "\n%s <b>%s</b> — %d task", rank, html.EscapeString(s.name), s.total())

		var parts []string
		if s.hardOverdue > 0 {
			parts = append(parts, fmt.Sprintf("🔴 %d quá hạn", s.hardOverdue))
		}
		if s.dueToday > 0 {
			parts = append(parts, fmt.Sprintf("🟡 %d đến hạn hôm nay", s.dueToday))
		}
		if s.stuck > 0 {
			parts = append(parts, fmt.Sprintf("⚪ %d bị kẹt", s.stuck))
		}
		if len(parts) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
		}
	}

	if rest := len(ranked) - len(top); rest > 0 {
		fmt.Fprintf(&b, "\n\n<i>… và %d người khác</i>", rest)
	}

	return b.String()
}

// collectAssigneeStats folds problem tasks into per-assignee counters,
// preserving first-seen order. Each task counts once, at its most urgent
// problem.
func (uc *implUseCase) collectAssigneeStats(tasks []task.Task) (map[string]*assigneeStats, []string) {
	now := uc.now()

	stats := map[string]*assigneeStats{}
	var order []string

	for _, t := range tasks {
		if len(t.Assignees) == 0 {
			continue
		}

		overdue, _ := uc.isOverdue(t, now)
		dueToday := false
		stuck := false
		if !overdue {
			dueToday, _ = uc.isDueToday(t, now)
		}
		if !overdue && !dueToday {
			stuck, _ = uc.isStuck(t, now)
		}
		if !overdue && !dueToday && !stuck {
			continue
		}

		dept := ""
		if t.List != nil {
			dept, _ = uc.dir.DepartmentOfList(t.List.ID)
		}

		for _, a := range t.Assignees {
			name := a.DisplayName()
			s, ok := stats[name]
			if !ok {
				s = &assigneeStats{name: name, departments: map[string]struct{}{}}
				stats[name] = s
				order = append(order, name)
			}
			if dept != "" {
				s.departments[dept] = struct{}{}
			}
			switch {
			case overdue:
				s.hardOverdue++
			case dueToday:
				s.dueToday++
			case stuck:
				s.stuck++
			}
		}
	}

	return stats, order
}

// ProblemTasks triages a raw task list into only the tasks that need
// attention, each tagged with a problem type and a priority (1 is most
// urgent). Healthy tasks are dropped.
func (uc *implUseCase) ProblemTasks(tasks []task.Task) []task.ProblemTask {
	now := uc.now()

	var out []task.ProblemTask
	for _, t := range tasks {
		problemType, priority, ok := uc.problemOf(t, now)
		if !ok {
			continue
		}
		out = append(out, task.ProblemTask{
			ID:              t.ID,
			Name:            t.Name,
			URL:             t.URL,
			Assignees:       assigneeNames(t.Assignees),
			ProblemType:     problemType,
			ProblemPriority: priority,
		})
	}
	return out
}

func (uc *implUseCase) problemOf(t task.Task, now time.Time) (string, int, bool) {
	if overdue, _ := uc.isOverdue(t, now); overdue {
		return "hard_overdue", 1, true
	}
	if dueToday, _ := uc.isDueToday(t, now); dueToday {
		return "due_today", 2, true
	}
	if stuck, _ := uc.isStuck(t, now); stuck {
		return "stuck", 3, true
	}
	return "", 0, false
}
