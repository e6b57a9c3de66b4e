package types

import "fmt"

// ShootStatus represents the status of a shoot
type ShootStatus string

const (
	ShootStatusScheduled  ShootStatus = "scheduled"
	ShootStatusInProgress ShootStatus = "in_progress"
	ShootStatusCompleted  ShootStatus = "completed"
	ShootStatusCancelled  ShootStatus = "cancelled"
	ShootStatusPostponed  ShootStatus = "postponed"
)

// IsValid checks if the shoot status is valid
func (s ShootStatus) IsValid() bool {
	switch s {
	case ShootStatusScheduled,
		ShootStatusInProgress,
		ShootStatusCompleted,
		ShootStatusCancelled,
		ShootStatusPostponed:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as ShootStatusScheduled
func (s ShootStatus) Normalize() ShootStatus {
	if s == "" {
		return ShootStatusScheduled
	}
	return s
}

// String returns the string representation of the shoot status
func (s ShootStatus) String() string {
	return string(s)
}

// ParseShootStatus parses a string into a ShootStatus
func ParseShootStatus(s string) (ShootStatus, error) {
	status := ShootStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid shoot status: %s", s)
	}
	return status, nil
}
