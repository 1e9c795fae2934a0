package models

import "time"

// InquiryStatus defines the possible statuses for an inquiry.
type InquiryStatus string

const (
	InquiryStatusNew          InquiryStatus = "new"
	InquiryStatusOpen         InquiryStatus = "open"
	InquiryStatusReplied      InquiryStatus = "replied"
	InquiryStatusInterested   InquiryStatus = "interested"
	InquiryStatusOpportunity  InquiryStatus = "opportunity"
	InquiryStatusQuotation    InquiryStatus = "quotation"
	InquiryStatusLostQuote    InquiryStatus = "lost_quotation"
	InquiryStatusConverted    InquiryStatus = "converted"
	InquiryStatusDoNotContact InquiryStatus = "do_not_contact"
)

// ValidInquiryStatuses lists every status the store accepts for an inquiry.
var ValidInquiryStatuses = map[InquiryStatus]bool{
	InquiryStatusNew:          true,
	InquiryStatusOpen:         true,
	InquiryStatusReplied:      true,
	InquiryStatusInterested:   true,
	InquiryStatusOpportunity:  true,
	InquiryStatusQuotation:    true,
	InquiryStatusLostQuote:    true,
	InquiryStatusConverted:    true,
	InquiryStatusDoNotContact: true,
}

// Inquiry is an early-stage prospective-couple record. It is owned by the
// record store; the engine only ever changes its status.
type Inquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Status    InquiryStatus `json:"status"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
