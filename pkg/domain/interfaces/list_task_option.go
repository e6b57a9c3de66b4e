package interfaces

import (
	"time"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// TaskOrder selects the single-field ordering of a task listing
type TaskOrder int

const (
	// TaskOrderCreatedDesc orders by creation time, newest first
	TaskOrderCreatedDesc TaskOrder = iota
	// TaskOrderDeadlineAsc orders by deadline, soonest first
	TaskOrderDeadlineAsc
)

// TaskQuery is the reified filter set for task listings. Each populated
// field adds one conjunctive predicate.
type TaskQuery struct {
	Assignee       model.UserID
	Status         types.TaskStatus
	OpenOnly       bool
	CreatedAfter   time.Time
	DeadlineBefore time.Time
	Order          TaskOrder
}

// ListTaskOption configures a task listing
type ListTaskOption func(*TaskQuery)

// WithTaskAssignee filters tasks whose assignee set contains the user
func WithTaskAssignee(userID model.UserID) ListTaskOption {
	return func(q *TaskQuery) {
		q.Assignee = userID
	}
}

// WithTaskStatus filters tasks by exact status
func WithTaskStatus(status types.TaskStatus) ListTaskOption {
	return func(q *TaskQuery) {
		q.Status = status
	}
}

// WithOpenTasks filters tasks to pending/in_progress only
func WithOpenTasks() ListTaskOption {
	return func(q *TaskQuery) {
		q.OpenOnly = true
	}
}

// WithTaskCreatedAfter filters tasks created at or after the given time
func WithTaskCreatedAfter(t time.Time) ListTaskOption {
	return func(q *TaskQuery) {
		q.CreatedAfter = t
	}
}

// WithTaskDeadlineBefore filters tasks whose deadline is at or before the
// given time
func WithTaskDeadlineBefore(t time.Time) ListTaskOption {
	return func(q *TaskQuery) {
		q.DeadlineBefore = t
	}
}

// WithTaskOrder selects the listing order
func WithTaskOrder(order TaskOrder) ListTaskOption {
	return func(q *TaskQuery) {
		q.Order = order
	}
}

// BuildTaskQuery applies options to an empty query
func BuildTaskQuery(opts ...ListTaskOption) *TaskQuery {
	q := &TaskQuery{}
	for _, opt := range opts {
		opt(q)
	}
	return q
}
