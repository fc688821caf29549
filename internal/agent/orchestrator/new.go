package orchestrator

import (
	"time"

	"clickup-task-assistant/internal/agent"
	"clickup-task-assistant/internal/conversation"
	"clickup-task-assistant/internal/directory"
	"clickup-task-assistant/internal/task"
	"clickup-task-assistant/pkg/llmprovider"
	pkgLog "clickup-task-assistant/pkg/log"
)

type Orchestrator struct {
	llm      *llmprovider.Manager
	registry *agent.ToolRegistry
	store    conversation.Store
	dir      *directory.Directory
	taskUC   task.UseCase
	l        pkgLog.Logger
	location *time.Location

	// now is swapped in tests to pin the wall clock.
	now func() time.Time
}

func New(
	llm *llmprovider.Manager,
	registry *agent.ToolRegistry,
	store conversation.Store,
	dir *directory.Directory,
	taskUC task.UseCase,
	l pkgLog.Logger,
	timezone string,
) *Orchestrator {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		store:    store,
		dir:      dir,
		taskUC:   taskUC,
		l:        l,
		location: loc,
		now:      time.Now,
	}
}
