package orchestrator

import (
	"context"
	"fmt"

	"clickup-task-assistant/internal/agent"
	"clickup-task-assistant/internal/agent/tools"
	"clickup-task-assistant/internal/conversation"
	"clickup-task-assistant/internal/model"
	"clickup-task-assistant/pkg/llmprovider"
	"clickup-task-assistant/pkg/openai"
)

// HandleMessage runs one incoming message through the shortcut check and the
// reason/act loop, and returns the user-facing answer. Failures are mapped to
// fixed messages; the returned error carries store-level problems and
// unrecognized completion failures the delivery layer may want to log.
func (o *Orchestrator) HandleMessage(ctx context.Context, sc model.Scope, text string) (string, error) {
	ctx = agent.WithScope(ctx, sc)

	if err := o.store.SaveMessage(ctx, sc.UserID, conversation.RoleUser, text); err != nil {
		o.l.Warnf(ctx, "HandleMessage: save user message failed: %v", err)
	}

	// Deterministic directory answers skip the model entirely.
	if intent := classifyShortcut(text); intent != intentNone {
		o.l.Infof(ctx, "HandleMessage: directory shortcut %d for user %s", intent, sc.UserID)
		return o.finish(ctx, sc, o.shortcutAnswer(intent))
	}

	req, err := o.buildRequest(ctx, sc, text)
	if err != nil {
		o.l.Errorf(ctx, "HandleMessage: build request failed: %v", err)
		return o.finish(ctx, sc, ErrMsgGeneric)
	}

	isTaskQuery := looksLikeTaskQuery(text)

	var (
		st     = startState()
		calls  []*llmprovider.FunctionCall
		answer string
	)

	for st.phase != phaseTerminated {
		switch st.phase {
		case phaseAwaitingModel:
			o.l.Infof(ctx, "Agent turn %d/%d", st.turn, MaxModelTurns)

			req.ForcedTool = ""
			req.RequireTool = false
			if st.forceTool(isTaskQuery) {
				// First turn of a live-data question must call a tool. The
				// time-tracking vocabulary leaves the choice to the model;
				// everything else pins the task tool.
				if looksLikeTimeQuery(text) {
					req.RequireTool = true
				} else {
					req.ForcedTool = ToolLoadAndFilterTasks
				}
			}

			resp, err := o.llm.GenerateContent(ctx, req)
			if err != nil {
				o.l.Errorf(ctx, "Agent LLM error at turn %d: %v", st.turn, err)
				msg, known := completionErrorMessage(err)
				answer, saveErr := o.finish(ctx, sc, msg)
				if !known {
					// Unrecognized failures propagate alongside the fixed
					// answer so the delivery layer can log the cause.
					return answer, err
				}
				return answer, saveErr
			}

			calls = toolCalls(resp.Content)
			answer = firstText(resp.Content)
			st = st.afterModel(len(calls) > 0, answer != "", isTaskQuery)
			if st.phase == phaseExecutingTool {
				req.Messages = append(req.Messages, resp.Content)
			}

		case phaseExecutingTool:
			var direct string
			for _, call := range calls {
				result, d := o.executeTool(ctx, sc, call)
				if d != "" {
					direct = d
					break
				}
				req.Messages = append(req.Messages, llmprovider.Message{
					Role: "tool",
					Parts: []llmprovider.Part{{
						FunctionResponse: &llmprovider.FunctionResponse{
							ID:       call.ID,
							Name:     call.Name,
							Response: result,
						},
					}},
				})
			}
			if direct != "" {
				answer = direct
			}
			st = st.afterTools(direct != "")
		}
	}

	switch st.reason {
	case reasonModelAnswer:
		o.l.Infof(ctx, "Agent finished at turn %d", st.turn)
		return o.finish(ctx, sc, answer)
	case reasonDirectReport:
		return o.finish(ctx, sc, answer)
	case reasonContractViolation:
		// The forced tool was ignored; refusing beats answering from stale
		// memory.
		o.l.Warnf(ctx, "Agent answered a task query without tools: %q", answer)
		return o.finish(ctx, sc, ErrMsgContractViolation)
	case reasonMaxTurns:
		o.l.Warnf(ctx, "Agent exceeded max turns (%d)", MaxModelTurns)
		return o.finish(ctx, sc, ErrMsgMaxStepsExceeded)
	}
	return o.finish(ctx, sc, ErrMsgGeneric)
}

// executeTool runs one tool call. For the task and time-tracking tools the
// rendered HTML comes back in direct and is sent to the user without another
// model turn; for everything else direct is empty and result feeds the model.
func (o *Orchestrator) executeTool(ctx context.Context, sc model.Scope, call *llmprovider.FunctionCall) (result interface{}, direct string) {
	o.l.Infof(ctx, "Agent calling tool: %s with args: %+v", call.Name, call.Args)

	tool, ok := o.registry.Get(call.Name)
	if !ok {
		o.l.Errorf(ctx, "Tool %s not found", call.Name)
		return map[string]string{"error": "tool not found"}, ""
	}

	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		o.l.Errorf(ctx, "Tool %s failed: %v", call.Name, err)
		return map[string]string{"error": err.Error()}, ""
	}

	if lf, ok := res.(*tools.LoadAndFilterResult); ok && call.Name == ToolLoadAndFilterTasks {
		// Re-summarization by the model would destroy the markup, so the
		// report is delivered as-is.
		patch := conversation.StatePatch{
			LastReportType: conversation.Ptr(string(lf.Filter)),
		}
		if p := lf.Output.Person; p != nil {
			patch.LastPersonID = conversation.Ptr(fmt.Sprintf("%d", p.ID))
			patch.LastPersonName = conversation.Ptr(p.Username)
		}
		if d := lf.Output.Department; d != "" {
			patch.Department = conversation.Ptr(d)
		}
		o.updateState(ctx, sc, patch)
		return nil, lf.Output.HTML
	}

	if tt, ok := res.(*tools.TimeTrackedResult); ok && call.Name == ToolGetTimeTracked {
		if p := tt.Output.Person; p != nil {
			o.updateState(ctx, sc, conversation.StatePatch{
				LastPersonID:   conversation.Ptr(fmt.Sprintf("%d", p.ID)),
				LastPersonName: conversation.Ptr(p.Username),
			})
		}
		return nil, tt.Output.HTML
	}

	return o.reduceToolResult(ctx, res), ""
}

func (o *Orchestrator) updateState(ctx context.Context, sc model.Scope, patch conversation.StatePatch) {
	if _, err := o.store.UpdateState(ctx, sc.UserID, patch); err != nil {
		o.l.Warnf(ctx, "updateState: %v", err)
	}
}

// finish appends the assistant's answer to the store and returns it.
func (o *Orchestrator) finish(ctx context.Context, sc model.Scope, answer string) (string, error) {
	if err := o.store.SaveMessage(ctx, sc.UserID, conversation.RoleAssistant, answer); err != nil {
		o.l.Warnf(ctx, "finish: save assistant message failed: %v", err)
		return answer, err
	}
	return answer, nil
}

// buildRequest assembles system instruction, bounded history and the new
// user text into one model request.
func (o *Orchestrator) buildRequest(ctx context.Context, sc model.Scope, text string) (*llmprovider.Request, error) {
	system := SystemPromptAgent + o.buildTimeContext()

	state, err := o.store.GetState(ctx, sc.UserID)
	if err != nil {
		return nil, fmt.Errorf("get session state: %w", err)
	}
	if state.LastPersonName != "" || state.Department != "" {
		system += SessionContextHeader
		if state.LastPersonName != "" {
			system += fmt.Sprintf(SessionPersonLine, state.LastPersonName, state.LastPersonID)
		}
		if state.Department != "" {
			system += fmt.Sprintf(SessionDepartmentLine, state.Department)
		}
		system += SessionPronounRule
	}

	history, err := o.store.GetRecentMessages(ctx, sc.UserID, MaxSessionHistory)
	if err != nil {
		return nil, fmt.Errorf("get recent messages: %w", err)
	}

	// The current text was already saved; drop that trailing copy so it is
	// not sent twice.
	if n := len(history); n > 0 && history[n-1].Role == conversation.RoleUser && history[n-1].Content == text {
		history = history[:n-1]
	}

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, llmprovider.Message{
			Role:  string(m.Role),
			Parts: []llmprovider.Part{{Text: m.Content}},
		})
	}
	messages = append(messages, llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: text}},
	})

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: system}},
		},
		Messages:    messages,
		Tools:       o.registry.ToFunctionDefinitions(),
		Temperature: 0, // determinism required for this domain
	}, nil
}

func toolCalls(msg llmprovider.Message) []*llmprovider.FunctionCall {
	var calls []*llmprovider.FunctionCall
	for _, part := range msg.Parts {
		if part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}
	return calls
}

func firstText(msg llmprovider.Message) string {
	for _, part := range msg.Parts {
		if part.Text != "" {
			return part.Text
		}
	}
	return ""
}

// completionErrorMessage maps completion-service failures to fixed answers.
// known is false when the failure matched no category.
func completionErrorMessage(err error) (msg string, known bool) {
	switch {
	case openai.IsQuotaExceeded(err):
		return ErrMsgQuotaExceeded, true
	case openai.IsRateLimited(err):
		return ErrMsgRateLimited, true
	case openai.IsInvalidAPIKey(err):
		return ErrMsgInvalidCredentials, true
	case openai.IsModelNotFound(err):
		return ErrMsgModelUnavailable, true
	}
	return ErrMsgGeneric, false
}
