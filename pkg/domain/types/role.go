package types

import "fmt"

// Role represents the access role of a user
type Role string

const (
	RoleEmployee  Role = "employee"
	RoleExecutive Role = "executive"
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{
		RoleEmployee,
		RoleExecutive,
	}
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleExecutive:
		return true
	default:
		return false
	}
}

// Normalize returns the role, treating empty as RoleEmployee. New users get
// the employee role until an executive promotes them.
func (r Role) Normalize() Role {
	if r == "" {
		return RoleEmployee
	}
	return r
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// DashboardPath returns the dashboard area for the role
func (r Role) DashboardPath() string {
	if r == RoleExecutive {
		return "/dashboard/executive"
	}
	return "/dashboard/employee"
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}
