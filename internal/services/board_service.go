package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"evermore/internal/models"
	"evermore/internal/store"
)

// BoardService reads both record kinds from the store and merges them into
// the single item list the pipeline board renders.
type BoardService struct {
	Store store.Client
}

func NewBoardService(st store.Client) *BoardService {
	return &BoardService{Store: st}
}

// Load fetches inquiries, opportunities, communications and meeting events
// and builds the board from them.
func (s *BoardService) Load(ctx context.Context) ([]models.PipelineItem, error) {
	inqRecs, err := s.Store.List(ctx, store.KindInquiry, nil)
	if err != nil {
		return nil, store.Humanize(err, "failed to load inquiries")
	}
	oppRecs, err := s.Store.List(ctx, store.KindOpportunity, nil)
	if err != nil {
		return nil, store.Humanize(err, "failed to load opportunities")
	}
	commRecs, err := s.Store.List(ctx, store.KindCommunication, nil)
	if err != nil {
		return nil, store.Humanize(err, "failed to load communications")
	}
	eventRecs, err := s.Store.List(ctx, store.KindEvent, nil)
	if err != nil {
		return nil, store.Humanize(err, "failed to load meeting events")
	}

	inquiries := make([]models.Inquiry, 0, len(inqRecs))
	for _, r := range inqRecs {
		inquiries = append(inquiries, models.InquiryFromRecord(r))
	}
	opportunities := make([]models.Opportunity, 0, len(oppRecs))
	for _, r := range oppRecs {
		opportunities = append(opportunities, models.OpportunityFromRecord(r))
	}
	communications := make([]models.Communication, 0, len(commRecs))
	for _, r := range commRecs {
		communications = append(communications, models.CommunicationFromRecord(r))
	}
	events := make([]models.MeetingEvent, 0, len(eventRecs))
	for _, r := range eventRecs {
		events = append(events, models.MeetingEventFromRecord(r))
	}

	return s.Build(inquiries, opportunities, communications, events), nil
}

// Build is pure and deterministic: same inputs, same board. Communications
// may arrive in any order; Build sorts them newest-first itself.
func (s *BoardService) Build(
	inquiries []models.Inquiry,
	opportunities []models.Opportunity,
	communications []models.Communication,
	events []models.MeetingEvent,
) []models.PipelineItem {
	// index inquiries by id and collect the ones already converted
	byID := make(map[string]models.Inquiry, len(inquiries))
	for _, inq := range inquiries {
		byID[inq.ID] = inq
	}
	converted := make(map[string]bool)
	for _, opp := range opportunities {
		if opp.SourceInquiryID != "" {
			converted[opp.SourceInquiryID] = true
		}
	}

	items := make([]models.PipelineItem, 0, len(inquiries)+len(opportunities))
	for _, inq := range inquiries {
		if converted[inq.ID] || hiddenInquiryStatuses[inq.Status] {
			continue
		}
		items = append(items, models.PipelineItem{
			ID:        models.ItemID(models.ItemTypeInquiry, inq.ID),
			Type:      models.ItemTypeInquiry,
			RecordID:  inq.ID,
			Name:      inq.Name,
			Status:    string(inq.Status),
			Email:     inq.Email,
			Phone:     inq.Phone,
			CreatedAt: inq.CreatedAt,
		})
	}
	for _, opp := range opportunities {
		email, phone := opp.Email, opp.Phone
		if src, ok := byID[opp.SourceInquiryID]; ok {
			if email == "" {
				email = src.Email
			}
			if phone == "" {
				phone = src.Phone
			}
		}
		items = append(items, models.PipelineItem{
			ID:        models.ItemID(models.ItemTypeOpportunity, opp.ID),
			Type:      models.ItemTypeOpportunity,
			RecordID:  opp.ID,
			Name:      opp.Name,
			Status:    string(opp.Status),
			Email:     email,
			Phone:     phone,
			CreatedAt: opp.CreatedAt,
		})
	}

	attachActivity(items, communications)
	attachMeetings(items, events)
	return items
}

// attachActivity sets each item's last communication, with the direction
// inverted to the party who must act next: the agency sent something, so the
// ball is with the client, and vice versa.
func attachActivity(items []models.PipelineItem, communications []models.Communication) {
	sorted := make([]models.Communication, len(communications))
	copy(sorted, communications)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At.After(sorted[j].At)
	})

	latest := make(map[string]models.Communication)
	for _, comm := range sorted {
		key := comm.ReferenceKind + "::" + comm.ReferenceID
		if _, seen := latest[key]; !seen {
			latest[key] = comm
		}
	}

	for i := range items {
		comm, ok := latest[items[i].ID]
		if !ok {
			continue
		}
		waiting := models.WaitingOnStaff
		if strings.EqualFold(comm.Direction, models.DirectionSent) {
			waiting = models.WaitingOnClient
		}
		items[i].LastActivity = &models.LastActivity{Date: comm.At, WaitingFor: waiting}
	}
}

// attachMeetings annotates inquiry items with their earliest meeting.
// Meetings are scheduled against inquiries only; opportunity items are
// never annotated.
func attachMeetings(items []models.PipelineItem, events []models.MeetingEvent) {
	earliest := make(map[string]time.Time)
	for _, ev := range events {
		if ev.StartsAt.IsZero() {
			continue
		}
		cur, ok := earliest[ev.ReferenceID]
		if !ok || ev.StartsAt.Before(cur) {
			earliest[ev.ReferenceID] = ev.StartsAt
		}
	}

	for i := range items {
		if items[i].Type != models.ItemTypeInquiry {
			continue
		}
		if t, ok := earliest[items[i].RecordID]; ok {
			at := t
			items[i].MeetingAt = &at
		}
	}
}
