package types

import "fmt"

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// IsValid checks if the task priority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow,
		TaskPriorityMedium,
		TaskPriorityHigh,
		TaskPriorityUrgent:
		return true
	default:
		return false
	}
}

// Normalize returns the priority, treating empty as TaskPriorityMedium
func (p TaskPriority) Normalize() TaskPriority {
	if p == "" {
		return TaskPriorityMedium
	}
	return p
}

// String returns the string representation of the task priority
func (p TaskPriority) String() string {
	return string(p)
}

// ParseTaskPriority parses a string into a TaskPriority
func ParseTaskPriority(s string) (TaskPriority, error) {
	priority := TaskPriority(s)
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid task priority: %s", s)
	}
	return priority, nil
}
