package types

import "fmt"

// LeadStatus represents the pipeline stage of a lead
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusContacted    LeadStatus = "contacted"
	LeadStatusQualified    LeadStatus = "qualified"
	LeadStatusProposalSent LeadStatus = "proposal_sent"
	LeadStatusNegotiation  LeadStatus = "negotiation"
	LeadStatusWon          LeadStatus = "won"
	LeadStatusLost         LeadStatus = "lost"
)

// AllLeadStatuses returns all valid lead statuses
func AllLeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusQualified,
		LeadStatusProposalSent,
		LeadStatusNegotiation,
		LeadStatusWon,
		LeadStatusLost,
	}
}

// IsValid checks if the lead status is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew,
		LeadStatusContacted,
		LeadStatusQualified,
		LeadStatusProposalSent,
		LeadStatusNegotiation,
		LeadStatusWon,
		LeadStatusLost:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as LeadStatusNew
func (s LeadStatus) Normalize() LeadStatus {
	if s == "" {
		return LeadStatusNew
	}
	return s
}

// String returns the string representation of the lead status
func (s LeadStatus) String() string {
	return string(s)
}

// ParseLeadStatus parses a string into a LeadStatus
func ParseLeadStatus(s string) (LeadStatus, error) {
	status := LeadStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid lead status: %s", s)
	}
	return status, nil
}
