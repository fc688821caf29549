package usecase

import (
	"fmt"
	"html"
	"strings"

	"clickup-task-assistant/internal/directory"
	"clickup-task-assistant/internal/task"
)

// maxListedTasks caps how many tasks a single report lists; anything beyond
// is folded into a trailing count so chat messages stay readable.
const maxListedTasks = 25

var filterLabels = map[task.FilterType]string{
	task.FilterOverdue:    "quá hạn",
	task.FilterDueToday:   "đến hạn hôm nay",
	task.FilterStuck:      "bị kẹt",
	task.FilterInProgress: "đang thực hiện",
	task.FilterNone:       "tất cả",
}

func filterLabel(filter task.FilterType) string {
	if label, ok := filterLabels[filter]; ok {
		return label
	}
	return string(filter)
}

// renderTaskReport builds the HTML answer for a classification result. All
// names coming from the tracker or the directory pass through html.EscapeString
// before embedding.
func (uc *implUseCase) renderTaskReport(c task.QueryClassification, person *directory.Member, tasks []task.Task) string {
	var b strings.Builder

	subject := uc.reportSubject(c, person)
	label := filterLabel(c.FilterType)

	if len(tasks) == 0 {
		fmt.Fprintf(&b, "✅ Không có task %s nào cho %s.", label, subject)
		return b.String()
	}

	fmt.Fprintf(&b, "<b>📋 Task %s của %s</b> (%d task)\n", label, subject, len(tasks))

	listed := tasks
	if len(listed) > maxListedTasks {
		listed = listed[:maxListedTasks]
	}

	for i, t := range listed {
		fmt.Fprintf(&b, "\n%d. %s", i+1, taskLine(t))
	}

	if rest := len(tasks) - len(listed); rest > 0 {
		fmt.Fprintf(&b, "\n\n<i>… và %d task khác</i>", rest)
	}

	return b.String()
}

func (uc *implUseCase) reportSubject(c task.QueryClassification, person *directory.Member) string {
	switch c.EntityType {
	case task.EntityPerson:
		if person != nil {
			return "<b>" + html.EscapeString(person.Username) + "</b>"
		}
		return "<b>" + html.EscapeString(c.EntityName) + "</b>"
	case task.EntityDepartment:
		return "phòng <b>" + html.EscapeString(c.EntityName) + "</b>"
	}
	return "<b>cả team</b>"
}

// taskLine renders one task as a linked name plus status and due annotation.
func taskLine(t task.Task) string {
	var b strings.Builder

	name := html.EscapeString(t.Name)
	if t.URL != "" {
		fmt.Fprintf(&b, `<a href="%s">%s</a>`, html.EscapeString(t.URL), name)
	} else {
		b.WriteString(name)
	}

	if s := t.Status.Normalized(); s != "" {
		fmt.Fprintf(&b, " — <i>%s</i>", html.EscapeString(s))
	}

	if names := assigneeNames(t.Assignees); len(names) > 0 {
		fmt.Fprintf(&b, " (%s)", html.EscapeString(strings.Join(names, ", ")))
	}

	return b.String()
}

func assigneeNames(assignees []task.Assignee) []string {
	names := make([]string, 0, len(assignees))
	for _, a := range assignees {
		names = append(names, a.DisplayName())
	}
	return names
}
