package orchestrator

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"clickup-task-assistant/internal/agent/tools"
	"clickup-task-assistant/internal/task"
)

// reduceToolResult shrinks oversized tool results before they are fed back
// to the model. Task lists are triaged into problem tasks plus a leaderboard
// generated concurrently; anything else is truncated.
func (o *Orchestrator) reduceToolResult(ctx context.Context, result interface{}) interface{} {
	raw, err := json.Marshal(result)
	if err != nil {
		o.l.Warnf(ctx, "reduceToolResult: marshal failed: %v", err)
		return map[string]string{"error": "unserializable tool result"}
	}
	if len(raw) <= SummarizeThresholdBytes {
		return result
	}

	if taskList, ok := extractTasks(result); ok {
		o.l.Infof(ctx, "reduceToolResult: triaging %d tasks (%d bytes)", len(taskList), len(raw))

		boardCh := make(chan string, 1)
		go func() {
			boardCh <- o.taskUC.Leaderboard(taskList)
		}()
		problems := o.taskUC.ProblemTasks(taskList)

		return map[string]interface{}{
			"note":          "large result reduced to problem tasks only",
			"total_tasks":   len(taskList),
			"problem_tasks": problems,
			"leaderboard":   <-boardCh,
		}
	}

	o.l.Infof(ctx, "reduceToolResult: truncating %d bytes", len(raw))
	return map[string]interface{}{
		"note":    "result truncated",
		"partial": truncateUTF8(string(raw), SummarizeThresholdBytes),
	}
}

func extractTasks(result interface{}) ([]task.Task, bool) {
	switch v := result.(type) {
	case []task.Task:
		return v, true
	case *tools.LoadAndFilterResult:
		return v.Output.Tasks, true
	}
	return nil, false
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
