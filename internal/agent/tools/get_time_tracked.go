package tools

import (
	"context"
	"fmt"

	"clickup-task-assistant/internal/agent"
	"clickup-task-assistant/internal/task"
	"clickup-task-assistant/pkg/datemath"
)

// GetTimeTrackedTool reports how much time a person logged over a named
// period. Like the task tool, its rendered HTML is delivered to the user
// as-is by the orchestrator.
type GetTimeTrackedTool struct {
	uc task.UseCase
}

// NewGetTimeTrackedTool creates the time-tracking tool.
func NewGetTimeTrackedTool(uc task.UseCase) agent.Tool {
	return &GetTimeTrackedTool{uc: uc}
}

func (t *GetTimeTrackedTool) Name() string {
	return "get_time_tracked"
}

func (t *GetTimeTrackedTool) Description() string {
	return "Get the total time a person tracked in the work tool over a period (today, yesterday, this_week, last_week, this_month, last_month)."
}

func (t *GetTimeTrackedTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"personId": map[string]interface{}{
				"type":        "string",
				"description": "Numeric tracker id of the person, when known",
			},
			"personName": map[string]interface{}{
				"type":        "string",
				"description": "Person name as the user wrote it",
			},
			"period": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"today", "yesterday", "this_week", "last_week", "this_month", "last_month"},
				"description": "Reporting window, resolved in the team timezone",
			},
		},
		"required": []string{"personName", "period"},
	}
}

// TimeTrackedResult is the execution output the orchestrator special-cases:
// HTML goes straight to the user, Person feeds the session state.
type TimeTrackedResult struct {
	Output task.TimeTrackedOutput
}

func (t *GetTimeTrackedTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	period, _ := params["period"].(string)
	if period == "" {
		return nil, fmt.Errorf("period parameter is required")
	}
	personID, _ := params["personId"].(string)
	personName, _ := params["personName"].(string)
	if personID == "" && personName == "" {
		return nil, fmt.Errorf("personId or personName is required")
	}

	output, err := t.uc.TimeTracked(ctx, task.TimeTrackedInput{
		PersonID:   personID,
		PersonName: personName,
		Period:     datemath.Period(period),
	})
	if err != nil {
		return nil, fmt.Errorf("time tracked failed: %w", err)
	}

	return &TimeTrackedResult{Output: output}, nil
}
