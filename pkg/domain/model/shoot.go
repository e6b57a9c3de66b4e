package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// ShootID is the identifier of a shoot
type ShootID string

// NewShootID generates a new random shoot ID
func NewShootID() ShootID {
	return ShootID(uuid.New().String())
}

// String returns the string representation of the shoot ID
func (id ShootID) String() string {
	return string(id)
}

// Shoot represents a scheduled production shoot for a client
type Shoot struct {
	ID        ShootID           `firestore:"-" json:"id"`
	ClientID  ClientID          `firestore:"clientId" json:"clientId"`
	Title     string            `firestore:"title" json:"title"`
	Date      time.Time         `firestore:"date" json:"date"`
	Location  string            `firestore:"location" json:"location"`
	Details   string            `firestore:"details" json:"details"`
	Status    types.ShootStatus `firestore:"status" json:"status"`
	Equipment []string          `firestore:"equipment,omitempty" json:"equipment,omitempty"`
	Notes     string            `firestore:"notes,omitempty" json:"notes,omitempty"`
	CreatedBy UserID            `firestore:"created_by" json:"created_by"`
	CreatedAt time.Time         `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time         `firestore:"updated_at" json:"updated_at"`
}

// ShootAssignment links a crew member to a shoot with a production role
// (photographer, videographer, assistant, ...). Assignments are append-only.
type ShootAssignment struct {
	ID         string    `firestore:"-" json:"id"`
	ShootID    ShootID   `firestore:"shootId" json:"shootId"`
	UserID     UserID    `firestore:"userId" json:"userId"`
	Role       string    `firestore:"role" json:"role"`
	AssignedAt time.Time `firestore:"assigned_at" json:"assigned_at"`
}
