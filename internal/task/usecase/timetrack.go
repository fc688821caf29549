package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"clickup-task-assistant/internal/task"
)

var periodLabels = map[string]string{
	"today":      "hôm nay",
	"yesterday":  "hôm qua",
	"this_week":  "tuần này",
	"last_week":  "tuần trước",
	"this_month": "tháng này",
	"last_month": "tháng trước",
}

// TimeTracked sums the tracked time entries of one person over a named
// period, resolved in the configured timezone.
func (uc *implUseCase) TimeTracked(ctx context.Context, input task.TimeTrackedInput) (task.TimeTrackedOutput, error) {
	if !input.Period.Valid() {
		return task.TimeTrackedOutput{}, fmt.Errorf("%w: %q", task.ErrUnknownPeriod, input.Period)
	}

	member, ok := uc.resolveMember(task.QueryClassification{
		EntityID:   input.PersonID,
		EntityName: input.PersonName,
	})
	if !ok {
		return task.TimeTrackedOutput{}, fmt.Errorf("%w: id=%q name=%q", task.ErrMemberNotFound, input.PersonID, input.PersonName)
	}

	start, end, err := uc.dm.PeriodRange(input.Period, uc.now())
	if err != nil {
		return task.TimeTrackedOutput{}, err
	}

	uc.l.Infof(ctx, "TimeTracked: person=%s period=%s range=[%s, %s]",
		member.Username, input.Period, start.Format("2006-01-02"), end.Format("2006-01-02"))

	entries, err := uc.repo.GetTimeEntries(ctx, member.ID, start, end)
	if err != nil {
		return task.TimeTrackedOutput{}, fmt.Errorf("lấy time entries thất bại: %w", err)
	}

	var total int64
	for _, e := range entries {
		total += e.DurationMillis()
	}

	out := task.TimeTrackedOutput{
		TotalMillis: total,
		EntryCount:  len(entries),
		Start:       start,
		End:         end,
		Person:      &member,
	}
	out.HTML = renderTimeReport(member.Username, string(input.Period), out)
	return out, nil
}

func renderTimeReport(username, period string, out task.TimeTrackedOutput) string {
	label, ok := periodLabels[period]
	if !ok {
		label = period
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>⏱ Thời gian làm việc của %s %s</b>\n", html.EscapeString(username), label)
	fmt.Fprintf(&b, "\nTổng: <b>%s</b> (%d entries)", formatDuration(out.TotalMillis), out.EntryCount)
	fmt.Fprintf(&b, "\n<i>%s → %s</i>", out.Start.Format("02/01/2006"), out.End.Format("02/01/2006"))
	return b.String()
}

// formatDuration renders a millisecond total as "Xh Ym".
func formatDuration(millis int64) string {
	minutes := millis / 1000 / 60
	hours := minutes / 60
	minutes %= 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
