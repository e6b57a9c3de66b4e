package model

import (
	"time"

	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// UserID is the identity-provider uid of a user
type UserID string

// String returns the string representation of the user ID
func (id UserID) String() string {
	return string(id)
}

// User represents a member of the production team. Users are created lazily
// on first sign-in and never hard-deleted.
type User struct {
	ID          UserID     `firestore:"-" json:"id"`
	Name        string     `firestore:"name" json:"name"`
	Email       string     `firestore:"email" json:"email"`
	Designation string     `firestore:"designation" json:"designation"`
	Role        types.Role `firestore:"role" json:"role"`
	AvatarURL   string     `firestore:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CreatedAt   time.Time  `firestore:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `firestore:"updated_at" json:"updated_at"`
}

// LoginHistory is a best-effort audit record appended on each successful
// session issuance. It is not a security control.
type LoginHistory struct {
	Device    string    `firestore:"device" json:"device"`
	IP        string    `firestore:"ip" json:"ip"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
	Status    string    `firestore:"status" json:"status"`
}
