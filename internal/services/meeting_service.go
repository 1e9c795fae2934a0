package services

import (
	"context"
	"time"

	"evermore/internal/store"
)

// Meeting scheduling is two-phase and non-atomic: the store has no
// transactions across records. The calendar event is created first; the
// status update that the drop represented is applied only once the event
// exists. If the status write fails the meeting stays persisted and the
// intercept stays pending, so ConfirmMeeting can be called again to retry
// just the status portion.

// ConfirmMeeting creates the calendar event for the pending intercept and
// then moves the inquiry into the meeting stage.
func (s *TransitionService) ConfirmMeeting(ctx context.Context, start time.Time, subject string) error {
	s.mu.Lock()
	p := s.pending
	s.mu.Unlock()
	if p == nil {
		return ErrNoPendingMeeting
	}

	if p.EventID == "" {
		end := start.Add(time.Hour)
		eventID, err := s.Store.Create(ctx, store.KindEvent, store.Record{
			"reference_id": p.Inquiry.RecordID,
			"subject":      subject,
			"starts_at":    start,
			"ends_at":      end,
		})
		if err != nil {
			return store.Humanize(err, "failed to schedule meeting")
		}
		s.mu.Lock()
		p.EventID = eventID
		s.mu.Unlock()
	}

	meetingCol, _ := ColumnByKey(MeetingColumnKey)
	target := string(meetingCol.InquiryTarget)
	if err := s.Store.SetField(ctx, store.KindInquiry, p.Inquiry.RecordID, "status", target); err != nil {
		// the meeting exists but the card has not moved; surfaced so the
		// user can retry the status write
		return store.Humanize(err, "failed to update inquiry status")
	}

	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()

	if s.Mailer != nil && p.Inquiry.Email != "" {
		_ = s.Mailer.SendMeetingConfirmation(p.Inquiry.Email, p.Inquiry.Name, start) // best-effort
	}
	return nil
}

// CancelMeeting discards the pending intercept. Purely local; an already
// created calendar event is kept.
func (s *TransitionService) CancelMeeting() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}
