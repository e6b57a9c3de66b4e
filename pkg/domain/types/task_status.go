package types

import "fmt"

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// AllTaskStatuses returns all valid task statuses
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusInProgress,
		TaskStatusCompleted,
		TaskStatusCancelled,
	}
}

// OpenTaskStatuses returns the statuses that count as open work
func OpenTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusInProgress,
	}
}

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending,
		TaskStatusInProgress,
		TaskStatusCompleted,
		TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the task still needs work
func (s TaskStatus) IsOpen() bool {
	return s == TaskStatusPending || s == TaskStatusInProgress
}

// Normalize returns the status, treating empty as TaskStatusPending
func (s TaskStatus) Normalize() TaskStatus {
	if s == "" {
		return TaskStatusPending
	}
	return s
}

// String returns the string representation of the task status
func (s TaskStatus) String() string {
	return string(s)
}

// ParseTaskStatus parses a string into a TaskStatus
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return status, nil
}
