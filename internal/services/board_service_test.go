package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evermore/internal/models"
	"evermore/internal/store"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

func TestBuild_ExcludesInquiriesWithLinkedOpportunity(t *testing.T) {
	svc := NewBoardService(nil)
	items := svc.Build(
		[]models.Inquiry{
			{ID: "L1", Name: "Ada & Ben", Status: models.InquiryStatusInterested},
			{ID: "L2", Name: "Cleo & Dan", Status: models.InquiryStatusOpen},
		},
		[]models.Opportunity{
			{ID: "O1", SourceInquiryID: "L1", Status: models.OpportunityStatusOpen},
		},
		nil, nil,
	)

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.NotContains(t, ids, "inquiry::L1")
	assert.Contains(t, ids, "inquiry::L2")
	assert.Contains(t, ids, "opportunity::O1")
}

func TestBuild_ExcludesHiddenInquiryStatuses(t *testing.T) {
	svc := NewBoardService(nil)
	items := svc.Build(
		[]models.Inquiry{
			{ID: "L1", Status: models.InquiryStatusConverted},
			{ID: "L2", Status: models.InquiryStatusOpportunity},
			{ID: "L3", Status: models.InquiryStatusQuotation},
			{ID: "L4", Status: models.InquiryStatusNew},
		},
		nil, nil, nil,
	)

	require.Len(t, items, 1)
	assert.Equal(t, "inquiry::L4", items[0].ID)
}

func TestBuild_OpportunityContactFallback(t *testing.T) {
	svc := NewBoardService(nil)
	items := svc.Build(
		[]models.Inquiry{
			{ID: "L1", Status: models.InquiryStatusInterested, Email: "ada@example.com", Phone: "+111"},
		},
		[]models.Opportunity{
			{ID: "O1", SourceInquiryID: "L1", Status: models.OpportunityStatusOpen, Phone: "+222"},
			{ID: "O2", Status: models.OpportunityStatusOpen, Email: "solo@example.com"},
		},
		nil, nil,
	)

	byID := map[string]models.PipelineItem{}
	for _, it := range items {
		byID[it.ID] = it
	}
	// missing email comes from the source inquiry, own phone wins
	assert.Equal(t, "ada@example.com", byID["opportunity::O1"].Email)
	assert.Equal(t, "+222", byID["opportunity::O1"].Phone)
	// no source inquiry: fields stay as they are
	assert.Equal(t, "solo@example.com", byID["opportunity::O2"].Email)
	assert.Equal(t, "", byID["opportunity::O2"].Phone)
}

func TestBuild_ActivityDirectionInversion(t *testing.T) {
	svc := NewBoardService(nil)
	items := svc.Build(
		[]models.Inquiry{
			{ID: "L1", Status: models.InquiryStatusOpen},
			{ID: "L2", Status: models.InquiryStatusOpen},
			{ID: "L3", Status: models.InquiryStatusOpen},
		},
		nil,
		[]models.Communication{
			{ReferenceKind: "inquiry", ReferenceID: "L1", Direction: "Sent", At: mustTime(t, "2025-03-01T10:00:00Z")},
			{ReferenceKind: "inquiry", ReferenceID: "L2", Direction: "Received", At: mustTime(t, "2025-03-01T10:00:00Z")},
		},
		nil,
	)

	byID := map[string]models.PipelineItem{}
	for _, it := range items {
		byID[it.ID] = it
	}
	// "we sent" means the client has to act next, and vice versa
	require.NotNil(t, byID["inquiry::L1"].LastActivity)
	assert.Equal(t, models.WaitingOnClient, byID["inquiry::L1"].LastActivity.WaitingFor)
	require.NotNil(t, byID["inquiry::L2"].LastActivity)
	assert.Equal(t, models.WaitingOnStaff, byID["inquiry::L2"].LastActivity.WaitingFor)
	assert.Nil(t, byID["inquiry::L3"].LastActivity)
}

func TestBuild_ActivityPicksMostRecent(t *testing.T) {
	svc := NewBoardService(nil)
	// deliberately out of order: Build must sort newest-first itself
	items := svc.Build(
		[]models.Inquiry{{ID: "L1", Status: models.InquiryStatusOpen}},
		nil,
		[]models.Communication{
			{ReferenceKind: "inquiry", ReferenceID: "L1", Direction: "received", At: mustTime(t, "2025-02-01T09:00:00Z")},
			{ReferenceKind: "inquiry", ReferenceID: "L1", Direction: "sent", At: mustTime(t, "2025-03-01T09:00:00Z")},
			{ReferenceKind: "inquiry", ReferenceID: "L1", Direction: "received", At: mustTime(t, "2025-01-01T09:00:00Z")},
		},
		nil,
	)

	require.NotNil(t, items[0].LastActivity)
	assert.Equal(t, mustTime(t, "2025-03-01T09:00:00Z"), items[0].LastActivity.Date)
	assert.Equal(t, models.WaitingOnClient, items[0].LastActivity.WaitingFor)
}

func TestBuild_MeetingEarliestPick(t *testing.T) {
	svc := NewBoardService(nil)
	items := svc.Build(
		[]models.Inquiry{{ID: "L1", Status: models.InquiryStatusInterested}},
		[]models.Opportunity{{ID: "O1", Status: models.OpportunityStatusOpen}},
		nil,
		[]models.MeetingEvent{
			{ReferenceID: "L1", StartsAt: mustTime(t, "2025-03-01T10:00:00Z")},
			{ReferenceID: "L1", StartsAt: mustTime(t, "2025-02-15T09:00:00Z")},
			{ReferenceID: "O1", StartsAt: mustTime(t, "2025-02-01T09:00:00Z")},
		},
	)

	byID := map[string]models.PipelineItem{}
	for _, it := range items {
		byID[it.ID] = it
	}
	require.NotNil(t, byID["inquiry::L1"].MeetingAt)
	assert.Equal(t, mustTime(t, "2025-02-15T09:00:00Z"), *byID["inquiry::L1"].MeetingAt)
	// meetings are linked to inquiries only
	assert.Nil(t, byID["opportunity::O1"].MeetingAt)
}

func TestLoad_BuildsFromStore(t *testing.T) {
	fs := newFakeStore()
	fs.add(store.KindInquiry, store.Record{
		"id": "L1", "name": "Ada & Ben", "status": "interested",
		"email": "ada@example.com", "created_at": mustTime(t, "2025-01-10T12:00:00Z"),
	})
	fs.add(store.KindOpportunity, store.Record{
		"id": "O1", "source_inquiry_id": "L9", "name": "Eve & Finn", "status": "quotation",
	})
	fs.add(store.KindCommunication, store.Record{
		"reference_kind": "inquiry", "reference_id": "L1", "direction": "sent",
		"communicated_at": mustTime(t, "2025-01-11T08:00:00Z"),
	})
	fs.add(store.KindEvent, store.Record{
		"reference_id": "L1", "starts_at": mustTime(t, "2025-01-20T14:00:00Z"),
	})

	svc := NewBoardService(fs)
	items, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := map[string]models.PipelineItem{}
	for _, it := range items {
		byID[it.ID] = it
	}
	inq := byID["inquiry::L1"]
	require.NotNil(t, inq.LastActivity)
	assert.Equal(t, models.WaitingOnClient, inq.LastActivity.WaitingFor)
	require.NotNil(t, inq.MeetingAt)
	assert.Equal(t, mustTime(t, "2025-01-20T14:00:00Z"), *inq.MeetingAt)
	assert.Equal(t, "quotation", byID["opportunity::O1"].Status)
}
