package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// TaskID is the identifier of a task
type TaskID string

// NewTaskID generates a new random task ID
func NewTaskID() TaskID {
	return TaskID(uuid.New().String())
}

// String returns the string representation of the task ID
func (id TaskID) String() string {
	return string(id)
}

// Task represents a unit of production work assigned to one or more users
type Task struct {
	ID          TaskID             `firestore:"-" json:"id"`
	Title       string             `firestore:"title" json:"title"`
	Description string             `firestore:"description" json:"description"`
	Status      types.TaskStatus   `firestore:"status" json:"status"`
	Priority    types.TaskPriority `firestore:"priority" json:"priority"`
	Deadline    time.Time          `firestore:"deadline" json:"deadline"`
	AssignedTo  []UserID           `firestore:"assigned_to" json:"assigned_to"`
	CreatedBy   UserID             `firestore:"created_by" json:"created_by"`
	Project     string             `firestore:"project,omitempty" json:"project,omitempty"`
	Tags        []string           `firestore:"tags,omitempty" json:"tags,omitempty"`
	Attachments []string           `firestore:"attachments,omitempty" json:"attachments,omitempty"`
	CreatedAt   time.Time          `firestore:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `firestore:"updated_at" json:"updated_at"`
}

// IsAssignedTo reports whether the given user appears in the assignee set
func (t *Task) IsAssignedTo(userID UserID) bool {
	for _, id := range t.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}

// CompletedOnTime reports whether a completed task made its deadline. The
// comparison uses UpdatedAt as the completion time, which conflates "last
// edited" with "completed"; kept as-is to match the scoring users already see.
func (t *Task) CompletedOnTime() bool {
	return t.Status == types.TaskStatusCompleted && !t.UpdatedAt.After(t.Deadline)
}
