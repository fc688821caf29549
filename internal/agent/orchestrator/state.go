package orchestrator

// The reason/act loop is modelled as an explicit state machine so the turn
// bound and the first-turn forced-tool rule can be tested without a live
// model.

type phase int

const (
	phaseAwaitingModel phase = iota
	phaseExecutingTool
	phaseTerminated
)

type termReason int

const (
	reasonNone              termReason = iota
	reasonModelAnswer                  // model produced a final text answer
	reasonDirectReport                 // primary tool output goes straight to the user
	reasonContractViolation            // first-turn task query answered without a tool
	reasonEmptyAnswer                  // model returned neither text nor tool calls
	reasonMaxTurns                     // turn bound exhausted
)

type loopState struct {
	phase  phase
	turn   int // 1-based model turn
	reason termReason
}

func startState() loopState {
	return loopState{phase: phaseAwaitingModel, turn: 1}
}

// forceTool reports whether this model turn must pin the primary task tool.
func (s loopState) forceTool(isTaskQuery bool) bool {
	return s.turn == 1 && isTaskQuery
}

// afterModel consumes one model response and decides the next phase.
func (s loopState) afterModel(hasToolCalls, hasText, isTaskQuery bool) loopState {
	switch {
	case hasToolCalls:
		s.phase = phaseExecutingTool
	case s.turn == 1 && isTaskQuery:
		s.phase = phaseTerminated
		s.reason = reasonContractViolation
	case !hasText:
		s.phase = phaseTerminated
		s.reason = reasonEmptyAnswer
	default:
		s.phase = phaseTerminated
		s.reason = reasonModelAnswer
	}
	return s
}

// afterTools consumes one round of tool execution. When the turn bound is
// already spent, the loop terminates instead of granting another model call.
func (s loopState) afterTools(direct bool) loopState {
	if direct {
		s.phase = phaseTerminated
		s.reason = reasonDirectReport
		return s
	}
	if s.turn >= MaxModelTurns {
		s.phase = phaseTerminated
		s.reason = reasonMaxTurns
		return s
	}
	s.turn++
	s.phase = phaseAwaitingModel
	return s
}
