package models

import "time"

// ItemType tags which record kind a pipeline item was derived from.
type ItemType string

const (
	ItemTypeInquiry     ItemType = "inquiry"
	ItemTypeOpportunity ItemType = "opportunity"
)

const (
	WaitingOnClient = "client"
	WaitingOnStaff  = "staff"
)

// LastActivity is the most recent communication on an item, resolved to the
// party who needs to act next.
type LastActivity struct {
	Date       time.Time `json:"date"`
	WaitingFor string    `json:"waiting_for"`
}

// PipelineItem is the unified board view of an inquiry or an opportunity.
// It is rebuilt from the store on every read and never persisted.
type PipelineItem struct {
	ID           string        `json:"id"` // "<type>::<record id>"
	Type         ItemType      `json:"type"`
	RecordID     string        `json:"record_id"`
	Name         string        `json:"name"`
	Status       string        `json:"status"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	LastActivity *LastActivity `json:"last_activity,omitempty"`
	MeetingAt    *time.Time    `json:"meeting_at,omitempty"`
}

// ItemID builds the composite board identifier for a record.
func ItemID(t ItemType, recordID string) string {
	return string(t) + "::" + recordID
}

// Column is one pipeline stage. An empty target status means dropping an
// item of that type into the column is not a plain status update.
type Column struct {
	Key                 string              `json:"key"`
	Label               string              `json:"label"`
	Color               string              `json:"color"`
	InquiryStatuses     []InquiryStatus     `json:"-"`
	OpportunityStatuses []OpportunityStatus `json:"-"`
	InquiryTarget       InquiryStatus       `json:"-"`
	OpportunityTarget   OpportunityStatus   `json:"-"`
}

func (c Column) HasInquiryStatus(s InquiryStatus) bool {
	for _, v := range c.InquiryStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (c Column) HasOpportunityStatus(s OpportunityStatus) bool {
	for _, v := range c.OpportunityStatuses {
		if v == s {
			return true
		}
	}
	return false
}
