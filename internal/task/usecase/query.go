package usecase

import (
	"context"
	"fmt"
	"strconv"

	"clickup-task-assistant/internal/directory"
	"clickup-task-assistant/internal/task"
)

// MaxPages caps the pagination loop per assignee as a circuit breaker
// against unbounded responses.
const MaxPages = 10

// LoadAndFilter resolves the classification to tasks and renders the report.
func (uc *implUseCase) LoadAndFilter(ctx context.Context, input task.LoadAndFilterInput) (task.LoadAndFilterOutput, error) {
	c := input.Classification
	if !c.EntityType.Valid() {
		return task.LoadAndFilterOutput{}, fmt.Errorf("%w: %q", task.ErrUnknownEntityType, c.EntityType)
	}
	if !c.FilterType.Valid() {
		return task.LoadAndFilterOutput{}, fmt.Errorf("%w: %q", task.ErrUnknownFilterType, c.FilterType)
	}

	uc.l.Infof(ctx, "LoadAndFilter: entity=%s id=%q name=%q filter=%s",
		c.EntityType, c.EntityID, c.EntityName, c.FilterType)

	var (
		tasks      []task.Task
		person     *directory.Member
		department string
		err        error
	)

	switch c.EntityType {
	case task.EntityPerson:
		member, ok := uc.resolveMember(c)
		if !ok {
			return task.LoadAndFilterOutput{}, fmt.Errorf("%w: id=%q name=%q", task.ErrMemberNotFound, c.EntityID, c.EntityName)
		}
		person = &member
		tasks = uc.loadPersonTasks(ctx, member.ID)

	case task.EntityDepartment:
		tasks, department, err = uc.loadDepartmentTasks(ctx, c.EntityName)
		if err != nil {
			return task.LoadAndFilterOutput{}, err
		}

	case task.EntityAll:
		tasks = uc.loadAllTasks(ctx)
	}

	filtered := uc.filterTasks(ctx, tasks, c.FilterType)

	return task.LoadAndFilterOutput{
		Tasks:      filtered,
		HTML:       uc.renderTaskReport(c, person, filtered),
		Person:     person,
		Department: department,
	}, nil
}

// resolveMember resolves a person reference against the roster, by numeric
// id first, then by name fragment.
func (uc *implUseCase) resolveMember(c task.QueryClassification) (directory.Member, bool) {
	if c.EntityID != "" {
		if id, err := strconv.Atoi(c.EntityID); err == nil {
			if member, ok := uc.dir.FindMemberByID(id); ok {
				return member, true
			}
		}
	}
	return uc.dir.FindMember(c.EntityName)
}

// loadPersonTasks paginates the assignee-filtered team endpoint. The loop
// stops at the first empty page or at MaxPages; a page failure is logged and
// treated as end-of-stream so partial results remain usable.
func (uc *implUseCase) loadPersonTasks(ctx context.Context, assigneeID int) []task.Task {
	var all []task.Task
	for page := 0; page < MaxPages; page++ {
		pageTasks, err := uc.repo.GetTeamTasksPage(ctx, assigneeID, page)
		if err != nil {
			uc.l.Warnf(ctx, "loadPersonTasks: assignee=%d page=%d failed, stopping: %v", assigneeID, page, err)
			break
		}
		if len(pageTasks) == 0 {
			break
		}
		all = append(all, pageTasks...)
	}
	return all
}

// loadDepartmentTasks fans out one list call per configured list,
// sequentially, tolerating individual list failures. The canonical
// department name comes back alongside the tasks.
func (uc *implUseCase) loadDepartmentTasks(ctx context.Context, deptName string) ([]task.Task, string, error) {
	dept, ok := uc.dir.FindDepartment(deptName)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", task.ErrDepartmentNotFound, deptName)
	}

	var all []task.Task
	for _, listID := range dept.Lists {
		listTasks, err := uc.repo.GetListTasks(ctx, listID)
		if err != nil {
			uc.l.Warnf(ctx, "loadDepartmentTasks: list=%s failed, skipping: %v", listID, err)
			continue
		}
		all = append(all, listTasks...)
	}
	return all, dept.Name, nil
}

// loadAllTasks issues one person resolution per roster member, sequentially,
// tolerating per-member failures.
func (uc *implUseCase) loadAllTasks(ctx context.Context) []task.Task {
	var all []task.Task
	for _, member := range uc.dir.Members {
		all = append(all, uc.loadPersonTasks(ctx, member.ID)...)
	}
	return all
}
