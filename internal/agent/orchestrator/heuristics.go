package orchestrator

import (
	"regexp"
	"strings"
)

// taskKeywords marks a message as a live task question. Matching any of
// these on the first model turn pins the task tool, so the model cannot
// answer from stale memory.
var taskKeywords = []string{
	"task",
	"việc",
	"công việc",
	"deadline",
	"quá hạn",
	"trễ hạn",
	"overdue",
	"due",
	"đến hạn",
	"bị kẹt",
	"stuck",
	"đang làm",
	"in progress",
}

// timeKeywords marks a tracked-time question. These still demand a tool on
// the first turn, but the choice is left to the model so get_time_tracked
// can serve them.
var timeKeywords = []string{
	"tracked",
	"time tracking",
	"thời gian làm",
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// looksLikeTaskQuery reports whether the message needs live data from a
// tool, task or time-tracking alike.
func looksLikeTaskQuery(text string) bool {
	lower := strings.ToLower(text)
	return containsAny(lower, taskKeywords) || containsAny(lower, timeKeywords)
}

// looksLikeTimeQuery reports whether the time-tracking vocabulary appears,
// in which case the first-turn forcing must not pin the task tool.
func looksLikeTimeQuery(text string) bool {
	return containsAny(strings.ToLower(text), timeKeywords)
}

// Directory intents are answered from static configuration without the
// model; these answers must never hallucinate.
var (
	rosterSizeRe    = regexp.MustCompile(`(?i)(bao nhiêu|mấy)\s+(người|thành viên)|how many (people|members)|team size`)
	rolesRe         = regexp.MustCompile(`(?i)vai trò|chức danh|roles?\b|ai làm gì`)
	memberListingRe = regexp.MustCompile(`(?i)danh sách\s+(thành viên|team|nhân sự)|(những|gồm những)\s+ai|list (the )?members|who is (on|in) the team`)
)

type directoryIntent int

const (
	intentNone directoryIntent = iota
	intentRosterSize
	intentRoles
	intentMemberListing
)

// classifyShortcut detects a team-directory intent. Task-looking text is
// never shortcut so "task của những ai trong team" still reaches the model.
func classifyShortcut(text string) directoryIntent {
	if looksLikeTaskQuery(text) {
		return intentNone
	}
	switch {
	case rosterSizeRe.MatchString(text):
		return intentRosterSize
	case memberListingRe.MatchString(text):
		return intentMemberListing
	case rolesRe.MatchString(text):
		return intentRoles
	}
	return intentNone
}
