package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// InvoiceID is the identifier of an invoice
type InvoiceID string

// NewInvoiceID generates a new random invoice ID
func NewInvoiceID() InvoiceID {
	return InvoiceID(uuid.New().String())
}

// String returns the string representation of the invoice ID
func (id InvoiceID) String() string {
	return string(id)
}

// InvoiceItem is a single billed line on an invoice
type InvoiceItem struct {
	Description string  `firestore:"description" json:"description"`
	Quantity    float64 `firestore:"quantity" json:"quantity"`
	Rate        float64 `firestore:"rate" json:"rate"`
	Amount      float64 `firestore:"amount" json:"amount"`
}

// Invoice represents a bill issued to a client
type Invoice struct {
	ID            InvoiceID           `firestore:"-" json:"id"`
	InvoiceNumber string              `firestore:"invoice_number" json:"invoice_number"`
	ClientID      ClientID            `firestore:"clientId" json:"clientId"`
	Amount        float64             `firestore:"amount" json:"amount"`
	Tax           float64             `firestore:"tax" json:"tax"`
	Total         float64             `firestore:"total" json:"total"`
	Status        types.InvoiceStatus `firestore:"status" json:"status"`
	Items         []InvoiceItem       `firestore:"items" json:"items"`
	IssuedAt      time.Time           `firestore:"issued_at" json:"issued_at"`
	DueDate       time.Time           `firestore:"due_date" json:"due_date"`
	PaidAt        time.Time           `firestore:"paid_at,omitempty" json:"paid_at,omitempty"`
	PaymentMethod string              `firestore:"payment_method,omitempty" json:"payment_method,omitempty"`
	Notes         string              `firestore:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time           `firestore:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `firestore:"updated_at" json:"updated_at"`
}

// ComputeTotals recalculates each item amount (quantity x rate), the
// subtotal and the grand total (subtotal + tax). Caller-supplied amounts
// are overwritten so the arithmetic invariant always holds.
func (i *Invoice) ComputeTotals() {
	var subtotal float64
	for idx := range i.Items {
		i.Items[idx].Amount = i.Items[idx].Quantity * i.Items[idx].Rate
		subtotal += i.Items[idx].Amount
	}
	i.Amount = subtotal
	i.Total = subtotal + i.Tax
}
