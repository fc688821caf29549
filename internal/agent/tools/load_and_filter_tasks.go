package tools

import (
	"context"
	"fmt"

	"clickup-task-assistant/internal/agent"
	"clickup-task-assistant/internal/task"
)

// LoadAndFilterTasksTool resolves a query classification to live tracker
// tasks and a rendered report. This is the primary data tool: its HTML
// output is delivered to the user as-is by the orchestrator.
type LoadAndFilterTasksTool struct {
	uc task.UseCase
}

// NewLoadAndFilterTasksTool creates the task retrieval tool.
func NewLoadAndFilterTasksTool(uc task.UseCase) agent.Tool {
	return &LoadAndFilterTasksTool{uc: uc}
}

func (t *LoadAndFilterTasksTool) Name() string {
	return "load_and_filter_tasks"
}

func (t *LoadAndFilterTasksTool) Description() string {
	return "Load live tasks from the tracker for a person, a department or the whole team, filtered by problem category. ALWAYS use this for any question about current tasks; never answer from memory."
}

func (t *LoadAndFilterTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"entityType": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"person", "department", "all"},
				"description": "Whose tasks to load",
			},
			"entityId": map[string]interface{}{
				"type":        "string",
				"description": "Numeric tracker id of the person, when known from context",
			},
			"entityName": map[string]interface{}{
				"type":        "string",
				"description": "Person or department name as the user wrote it",
			},
			"filterType": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"overdue", "due_today", "stuck", "in_progress", "none"},
				"description": "Problem category to keep; 'none' returns everything",
			},
		},
		"required": []string{"entityType", "filterType"},
	}
}

// Result is the execution output the orchestrator special-cases: HTML goes
// straight to the user, Person/Department and Filter feed the session state.
type LoadAndFilterResult struct {
	Filter task.FilterType
	Output task.LoadAndFilterOutput
}

func (t *LoadAndFilterTasksTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	entityType, _ := params["entityType"].(string)
	if entityType == "" {
		return nil, fmt.Errorf("entityType parameter is required")
	}
	filterType, _ := params["filterType"].(string)
	if filterType == "" {
		return nil, fmt.Errorf("filterType parameter is required")
	}
	entityID, _ := params["entityId"].(string)
	entityName, _ := params["entityName"].(string)

	output, err := t.uc.LoadAndFilter(ctx, task.LoadAndFilterInput{
		Classification: task.QueryClassification{
			EntityType: task.EntityType(entityType),
			EntityID:   entityID,
			EntityName: entityName,
			FilterType: task.FilterType(filterType),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("load tasks failed: %w", err)
	}

	return &LoadAndFilterResult{Filter: task.FilterType(filterType), Output: output}, nil
}
