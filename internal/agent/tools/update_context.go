package tools

import (
	"context"
	"fmt"

	"clickup-task-assistant/internal/agent"
	"clickup-task-assistant/internal/conversation"
)

// UpdateContextTool pins a person into the user's session state so follow-up
// questions ("còn task quá hạn của anh ấy?") resolve without re-asking.
type UpdateContextTool struct {
	store conversation.Store
}

// NewUpdateContextTool creates the session context tool.
func NewUpdateContextTool(store conversation.Store) agent.Tool {
	return &UpdateContextTool{store: store}
}

func (t *UpdateContextTool) Name() string {
	return "update_context"
}

func (t *UpdateContextTool) Description() string {
	return "Remember which person the conversation is about, so later questions with pronouns can be resolved. Call this after the user names a specific person."
}

func (t *UpdateContextTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"personId": map[string]interface{}{
				"type":        "string",
				"description": "Numeric tracker id of the person",
			},
			"personName": map[string]interface{}{
				"type":        "string",
				"description": "Display name of the person",
			},
		},
		"required": []string{"personId", "personName"},
	}
}

func (t *UpdateContextTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	personID, _ := params["personId"].(string)
	personName, _ := params["personName"].(string)
	if personID == "" && personName == "" {
		return nil, fmt.Errorf("personId or personName is required")
	}

	sc, ok := agent.ScopeFrom(ctx)
	if !ok {
		return nil, fmt.Errorf("no user scope in context")
	}

	state, err := t.store.UpdateState(ctx, sc.UserID, conversation.StatePatch{
		LastPersonID:   conversation.Ptr(personID),
		LastPersonName: conversation.Ptr(personName),
	})
	if err != nil {
		return nil, fmt.Errorf("update session state failed: %w", err)
	}

	return map[string]interface{}{
		"status":      "ok",
		"person_id":   state.LastPersonID,
		"person_name": state.LastPersonName,
	}, nil
}
