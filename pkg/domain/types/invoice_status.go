package types

import "fmt"

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// UnpaidInvoiceStatuses returns the statuses that count as outstanding
func UnpaidInvoiceStatuses() []InvoiceStatus {
	return []InvoiceStatus{
		InvoiceStatusSent,
		InvoiceStatusOverdue,
	}
}

// IsValid checks if the invoice status is valid
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusPaid,
		InvoiceStatusOverdue,
		InvoiceStatusCancelled:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as InvoiceStatusDraft
func (s InvoiceStatus) Normalize() InvoiceStatus {
	if s == "" {
		return InvoiceStatusDraft
	}
	return s
}

// String returns the string representation of the invoice status
func (s InvoiceStatus) String() string {
	return string(s)
}

// ParseInvoiceStatus parses a string into an InvoiceStatus
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	status := InvoiceStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid invoice status: %s", s)
	}
	return status, nil
}
