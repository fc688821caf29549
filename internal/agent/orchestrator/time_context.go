package orchestrator

import (
	"fmt"
	"time"
)

// buildTimeContext creates a temporal context block for the system prompt.
func (o *Orchestrator) buildTimeContext() string {
	now := o.now().In(o.location)

	// Monday-Sunday week boundaries.
	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		vietnameseWeekday(now.Weekday()),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		o.location.String(),
	)
}

func vietnameseWeekday(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "Thứ Hai"
	case time.Tuesday:
		return "Thứ Ba"
	case time.Wednesday:
		return "Thứ Tư"
	case time.Thursday:
		return "Thứ Năm"
	case time.Friday:
		return "Thứ Sáu"
	case time.Saturday:
		return "Thứ Bảy"
	}
	return "Chủ Nhật"
}
