package models

import "time"

// MeetingEvent is a calendar record linked to an inquiry.
type MeetingEvent struct {
	ID          string    `json:"id"`
	ReferenceID string    `json:"reference_id"`
	Subject     string    `json:"subject,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}
