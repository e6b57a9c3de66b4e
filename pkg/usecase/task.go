package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// DefaultUpcomingWindow bounds the "upcoming deadlines" listing
const DefaultUpcomingWindow = 7 * 24 * time.Hour

type TaskUseCase struct {
	repo interfaces.Repository
}

func NewTaskUseCase(repo interfaces.Repository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

// CreateTaskInput carries the caller-supplied task fields.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      types.TaskStatus
	Priority    types.TaskPriority
	Deadline    time.Time
	AssignedTo  []model.UserID
	Project     string
	Tags        []string
}

// Create validates and stores a new task. Missing assignees default to the
// creator so no task is ever unowned.
func (uc *TaskUseCase) Create(ctx context.Context, sess *auth.Session, input *CreateTaskInput) (*model.Task, error) {
	if input.Title == "" {
		return nil, goerr.Wrap(ErrValidation, "task title is required")
	}
	if input.Deadline.IsZero() {
		return nil, goerr.Wrap(ErrValidation, "task deadline is required")
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid task status", goerr.V("status", input.Status))
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid task priority", goerr.V("priority", input.Priority))
	}

	assignedTo := input.AssignedTo
	if len(assignedTo) == 0 {
		assignedTo = []model.UserID{sess.UserID}
	}

	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Deadline:    input.Deadline,
		AssignedTo:  assignedTo,
		CreatedBy:   sess.UserID,
		Project:     input.Project,
		Tags:        input.Tags,
	}

	created, err := uc.repo.Task().Create(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create task")
	}
	return created, nil
}

func (uc *TaskUseCase) Get(ctx context.Context, id model.TaskID) (*model.Task, error) {
	return uc.repo.Task().Get(ctx, id)
}

// ListForUser returns a user's tasks ordered by deadline, soonest first.
func (uc *TaskUseCase) ListForUser(ctx context.Context, userID model.UserID) ([]*model.Task, error) {
	return uc.repo.Task().List(ctx,
		interfaces.WithTaskAssignee(userID),
		interfaces.WithTaskOrder(interfaces.TaskOrderDeadlineAsc),
	)
}

// ListByStatus returns all tasks in a status, newest first.
func (uc *TaskUseCase) ListByStatus(ctx context.Context, status types.TaskStatus) ([]*model.Task, error) {
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid task status", goerr.V("status", status))
	}
	return uc.repo.Task().List(ctx, interfaces.WithTaskStatus(status))
}

// ListUpcoming returns a user's open tasks due within the window, soonest
// first.
func (uc *TaskUseCase) ListUpcoming(ctx context.Context, userID model.UserID, window time.Duration) ([]*model.Task, error) {
	if window <= 0 {
		window = DefaultUpcomingWindow
	}
	return uc.repo.Task().List(ctx,
		interfaces.WithTaskAssignee(userID),
		interfaces.WithOpenTasks(),
		interfaces.WithTaskDeadlineBefore(time.Now().UTC().Add(window)),
		interfaces.WithTaskOrder(interfaces.TaskOrderDeadlineAsc),
	)
}

// TaskPatch carries partial task updates. Nil fields are left untouched;
// identity and provenance fields cannot be patched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *types.TaskStatus
	Priority    *types.TaskPriority
	Deadline    *time.Time
	AssignedTo  []model.UserID
	Project     *string
	Tags        []string
}

func (uc *TaskUseCase) Patch(ctx context.Context, id model.TaskID, patch *TaskPatch) (*model.Task, error) {
	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, goerr.Wrap(ErrValidation, "task title cannot be empty")
		}
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return nil, goerr.Wrap(ErrValidation, "invalid task status", goerr.V("status", *patch.Status))
		}
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		if !patch.Priority.IsValid() {
			return nil, goerr.Wrap(ErrValidation, "invalid task priority", goerr.V("priority", *patch.Priority))
		}
		task.Priority = *patch.Priority
	}
	if patch.Deadline != nil {
		if patch.Deadline.IsZero() {
			return nil, goerr.Wrap(ErrValidation, "task deadline cannot be cleared")
		}
		task.Deadline = *patch.Deadline
	}
	if patch.AssignedTo != nil {
		if len(patch.AssignedTo) == 0 {
			return nil, goerr.Wrap(ErrValidation, "task must keep at least one assignee")
		}
		task.AssignedTo = patch.AssignedTo
	}
	if patch.Project != nil {
		task.Project = *patch.Project
	}
	if patch.Tags != nil {
		task.Tags = patch.Tags
	}

	updated, err := uc.repo.Task().Update(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V("id", id))
	}
	return updated, nil
}

// Delete removes a task. Executives only.
func (uc *TaskUseCase) Delete(ctx context.Context, sess *auth.Session, id model.TaskID) error {
	if sess.Role != types.RoleExecutive {
		return goerr.Wrap(ErrForbidden, "only executives can delete tasks")
	}
	return uc.repo.Task().Delete(ctx, id)
}
