package models

import (
	"fmt"
	"strconv"
	"time"
)

// Record decoding. Both store backends hand back loosely typed rows
// (map[string]any): Postgres yields int64/time.Time, the hosted store yields
// JSON strings and floats. Missing or malformed fields decode to zero values
// rather than errors.

func recString(r map[string]any, key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}
	return ""
}

func recTime(r map[string]any, key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02T15:04:05", v); err == nil {
			return t
		}
	case []byte:
		if t, err := time.Parse(time.RFC3339, string(v)); err == nil {
			return t
		}
	}
	return time.Time{}
}

func InquiryFromRecord(r map[string]any) Inquiry {
	return Inquiry{
		ID:        recString(r, "id"),
		Name:      recString(r, "name"),
		Status:    InquiryStatus(recString(r, "status")),
		Email:     recString(r, "email"),
		Phone:     recString(r, "phone"),
		CreatedAt: recTime(r, "created_at"),
	}
}

func OpportunityFromRecord(r map[string]any) Opportunity {
	return Opportunity{
		ID:              recString(r, "id"),
		SourceInquiryID: recString(r, "source_inquiry_id"),
		Name:            recString(r, "name"),
		Status:          OpportunityStatus(recString(r, "status")),
		Email:           recString(r, "email"),
		Phone:           recString(r, "phone"),
		Amount:          recString(r, "amount"),
		Currency:        recString(r, "currency"),
		CreatedAt:       recTime(r, "created_at"),
	}
}

func CommunicationFromRecord(r map[string]any) Communication {
	return Communication{
		ReferenceKind: recString(r, "reference_kind"),
		ReferenceID:   recString(r, "reference_id"),
		Direction:     recString(r, "direction"),
		At:            recTime(r, "communicated_at"),
	}
}

func MeetingEventFromRecord(r map[string]any) MeetingEvent {
	return MeetingEvent{
		ID:          recString(r, "id"),
		ReferenceID: recString(r, "reference_id"),
		Subject:     recString(r, "subject"),
		StartsAt:    recTime(r, "starts_at"),
		EndsAt:      recTime(r, "ends_at"),
	}
}
