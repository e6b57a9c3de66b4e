package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientID is the identifier of a client
type ClientID string

// NewClientID generates a new random client ID
func NewClientID() ClientID {
	return ClientID(uuid.New().String())
}

// String returns the string representation of the client ID
func (id ClientID) String() string {
	return string(id)
}

// Client represents a customer of the studio
type Client struct {
	ID        ClientID  `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Phone     string    `firestore:"phone,omitempty" json:"phone,omitempty"`
	Company   string    `firestore:"company,omitempty" json:"company,omitempty"`
	Address   string    `firestore:"address,omitempty" json:"address,omitempty"`
	Notes     string    `firestore:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at" json:"updated_at"`
}
