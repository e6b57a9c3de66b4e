package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// LeadID is the identifier of a lead
type LeadID string

// NewLeadID generates a new random lead ID
func NewLeadID() LeadID {
	return LeadID(uuid.New().String())
}

// String returns the string representation of the lead ID
func (id LeadID) String() string {
	return string(id)
}

// Lead represents an inbound sales opportunity
type Lead struct {
	ID           LeadID           `firestore:"-" json:"id"`
	ClientName   string           `firestore:"client_name" json:"client_name"`
	Company      string           `firestore:"company,omitempty" json:"company,omitempty"`
	ContactEmail string           `firestore:"contact_email" json:"contact_email"`
	ContactPhone string           `firestore:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	Status       types.LeadStatus `firestore:"status" json:"status"`
	Source       string           `firestore:"source,omitempty" json:"source,omitempty"`
	Demands      string           `firestore:"demands,omitempty" json:"demands,omitempty"`
	Budget       float64          `firestore:"budget,omitempty" json:"budget,omitempty"`
	Reason       string           `firestore:"reason,omitempty" json:"reason,omitempty"`
	HandledBy    UserID           `firestore:"handled_by,omitempty" json:"handled_by,omitempty"`
	Notes        string           `firestore:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time        `firestore:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `firestore:"updated_at" json:"updated_at"`
}
