package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/repository"
)

type taskRepository struct {
	mu    sync.RWMutex
	tasks map[model.TaskID]*model.Task
}

func newTaskRepository() *taskRepository {
	return &taskRepository{
		tasks: make(map[model.TaskID]*model.Task),
	}
}

func copyTask(t *model.Task) *model.Task {
	c := *t
	c.AssignedTo = append([]model.UserID(nil), t.AssignedTo...)
	c.Tags = append([]string(nil), t.Tags...)
	c.Attachments = append([]string(nil), t.Attachments...)
	return &c
}

func (r *taskRepository) Create(_ context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if task.ID == "" {
		task.ID = model.NewTaskID()
	}
	task.Status = task.Status.Normalize()
	task.Priority = task.Priority.Normalize()
	task.CreatedAt = now
	task.UpdatedAt = now

	r.tasks[task.ID] = copyTask(task)
	return task, nil
}

func (r *taskRepository) Get(_ context.Context, id model.TaskID) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "task not found", goerr.V("id", id))
	}
	return copyTask(task), nil
}

func matchTask(t *model.Task, q *interfaces.TaskQuery) bool {
	if q.Assignee != "" && !t.IsAssignedTo(q.Assignee) {
		return false
	}
	if q.Status != "" && t.Status != q.Status {
		return false
	}
	if q.OpenOnly && !t.Status.IsOpen() {
		return false
	}
	if !q.CreatedAfter.IsZero() && t.CreatedAt.Before(q.CreatedAfter) {
		return false
	}
	if !q.DeadlineBefore.IsZero() && t.Deadline.After(q.DeadlineBefore) {
		return false
	}
	return true
}

func (r *taskRepository) List(_ context.Context, opts ...interfaces.ListTaskOption) ([]*model.Task, error) {
	q := interfaces.BuildTaskQuery(opts...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []*model.Task
	for _, t := range r.tasks {
		if matchTask(t, q) {
			tasks = append(tasks, copyTask(t))
		}
	}

	switch q.Order {
	case interfaces.TaskOrderDeadlineAsc:
		sort.Slice(tasks, func(i, j int) bool {
			return tasks[i].Deadline.Before(tasks[j].Deadline)
		})
	default:
		sort.Slice(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}

	return tasks, nil
}

func (r *taskRepository) Update(_ context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "task not found", goerr.V("id", task.ID))
	}

	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = time.Now().UTC()
	r.tasks[task.ID] = copyTask(task)
	return task, nil
}

func (r *taskRepository) Delete(_ context.Context, id model.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return goerr.Wrap(repository.ErrNotFound, "task not found", goerr.V("id", id))
	}
	delete(r.tasks, id)
	return nil
}
