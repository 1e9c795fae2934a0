package models

import "time"

const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// Communication is a read-only log entry from the record store. Direction is
// staff-centric: "sent" means the agency sent it.
type Communication struct {
	ReferenceKind string    `json:"reference_kind"`
	ReferenceID   string    `json:"reference_id"`
	Direction     string    `json:"direction"`
	At            time.Time `json:"communicated_at"`
}
