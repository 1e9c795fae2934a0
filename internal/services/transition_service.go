package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"evermore/internal/models"
	"evermore/internal/store"
)

// Contract errors: raised before any store call, never fixed by retrying.
var (
	ErrMovePending      = errors.New("a meeting is being scheduled; confirm or cancel it first")
	ErrLockedItem       = errors.New("item is in a terminal status and cannot be moved")
	ErrUnknownColumn    = errors.New("unknown pipeline column")
	ErrUnsupportedMove  = errors.New("this item cannot be dropped into that column")
	ErrNoPendingMeeting = errors.New("no meeting is pending confirmation")
)

// PendingMeeting is the intercept state for an inquiry dropped into the
// meeting column. EventID is set once the calendar event exists, so a
// re-confirm after a failed status write retries only the status portion.
type PendingMeeting struct {
	Inquiry models.PipelineItem
	EventID string
}

// TransitionService executes drag-and-drop stage transitions: plain status
// updates, inquiry-to-opportunity conversions, and the meeting intercept.
// At most one meeting intercept is pending at a time.
type TransitionService struct {
	Store      store.Client
	Conversion *ConversionService
	Mailer     EmailService // optional

	mu      sync.Mutex
	pending *PendingMeeting
}

func NewTransitionService(st store.Client, conv *ConversionService, mailer EmailService) *TransitionService {
	return &TransitionService{Store: st, Conversion: conv, Mailer: mailer}
}

// MoveResult tells the caller what a drop turned into.
type MoveResult struct {
	Intercepted   bool   `json:"intercepted"`
	Converted     bool   `json:"converted"`
	OpportunityID string `json:"opportunity_id,omitempty"`
}

// RequestMove validates and executes one drop. The caller must refetch the
// board after a non-intercepted success: a status change can alter which
// items are visible. On failure nothing was applied locally, so a refetch
// reverts the optimistic reorder.
func (s *TransitionService) RequestMove(ctx context.Context, item models.PipelineItem, columnKey string) (*MoveResult, error) {
	s.mu.Lock()
	if s.pending != nil {
		s.mu.Unlock()
		return nil, ErrMovePending
	}
	col, ok := ColumnByKey(columnKey)
	if !ok {
		s.mu.Unlock()
		return nil, ErrUnknownColumn
	}
	if IsLocked(item.Type, item.Status) {
		s.mu.Unlock()
		return nil, ErrLockedItem
	}
	if item.Type == models.ItemTypeInquiry && col.Key == MeetingColumnKey {
		// no status update yet; the caller collects a meeting time and
		// calls ConfirmMeeting or CancelMeeting
		s.pending = &PendingMeeting{Inquiry: item}
		s.mu.Unlock()
		return &MoveResult{Intercepted: true}, nil
	}
	s.mu.Unlock()

	if target := TargetStatus(col, item.Type); target != "" {
		kind := kindForItem(item.Type)
		if err := s.Store.SetField(ctx, kind, item.RecordID, "status", target); err != nil {
			return nil, store.Humanize(err, fmt.Sprintf("failed to update %s status", item.Type))
		}
		return &MoveResult{}, nil
	}

	// opportunity-only column reached by an inquiry: convert
	if item.Type == models.ItemTypeInquiry && col.OpportunityTarget != "" {
		oppID, err := s.Conversion.Convert(ctx, item, col.OpportunityTarget)
		if err != nil {
			return nil, err
		}
		return &MoveResult{Converted: true, OpportunityID: oppID}, nil
	}

	return nil, ErrUnsupportedMove
}

// Pending returns a copy of the pending intercept state, if any.
func (s *TransitionService) Pending() *PendingMeeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil
	}
	p := *s.pending
	return &p
}

func kindForItem(t models.ItemType) store.Kind {
	if t == models.ItemTypeOpportunity {
		return store.KindOpportunity
	}
	return store.KindInquiry
}
