package models

import "time"

// OpportunityStatus defines the possible statuses for an opportunity.
type OpportunityStatus string

const (
	OpportunityStatusOpen      OpportunityStatus = "open"
	OpportunityStatusQuotation OpportunityStatus = "quotation"
	OpportunityStatusConverted OpportunityStatus = "converted"
	OpportunityStatusLost      OpportunityStatus = "lost"
	OpportunityStatusClosed    OpportunityStatus = "closed"
)

var ValidOpportunityStatuses = map[OpportunityStatus]bool{
	OpportunityStatusOpen:      true,
	OpportunityStatusQuotation: true,
	OpportunityStatusConverted: true,
	OpportunityStatusLost:      true,
	OpportunityStatusClosed:    true,
}

// Opportunity is a qualified sales record, usually derived from an inquiry.
// New opportunities are created by the conversion service only.
type Opportunity struct {
	ID              string            `json:"id"`
	SourceInquiryID string            `json:"source_inquiry_id,omitempty"`
	Name            string            `json:"name"`
	Status          OpportunityStatus `json:"status"`
	Email           string            `json:"email,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	Amount          string            `json:"amount,omitempty"`
	Currency        string            `json:"currency,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}
