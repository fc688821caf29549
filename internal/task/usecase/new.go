package usecase

import (
	"time"

	"clickup-task-assistant/internal/directory"
	"clickup-task-assistant/internal/task"
	"clickup-task-assistant/internal/task/repository"
	"clickup-task-assistant/pkg/datemath"
	pkgLog "clickup-task-assistant/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.TrackerRepository
	dir  *directory.Directory
	dm   *datemath.Parser

	// now is swapped in tests to pin the wall clock.
	now func() time.Time
}

// New creates the task query use case.
func New(
	l pkgLog.Logger,
	repo repository.TrackerRepository,
	dir *directory.Directory,
	dm *datemath.Parser,
) task.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		dir:  dir,
		dm:   dm,
		now:  time.Now,
	}
}
