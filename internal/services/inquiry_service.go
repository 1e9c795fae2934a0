package services

import (
	"context"
	"errors"
	"time"

	"evermore/internal/models"
	"evermore/internal/store"
)

var ErrInvalidStatus = errors.New("invalid status")

// InquiryService backs the inquiry list/detail pages.
type InquiryService struct {
	Store store.Client
}

func NewInquiryService(st store.Client) *InquiryService {
	return &InquiryService{Store: st}
}

func (s *InquiryService) List(ctx context.Context, status string) ([]models.Inquiry, error) {
	filters := store.Filters{}
	if status != "" {
		filters["status"] = status
	}
	recs, err := s.Store.List(ctx, store.KindInquiry, filters)
	if err != nil {
		return nil, store.Humanize(err, "failed to list inquiries")
	}
	out := make([]models.Inquiry, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.InquiryFromRecord(r))
	}
	return out, nil
}

func (s *InquiryService) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	recs, err := s.Store.List(ctx, store.KindInquiry, store.Filters{"id": id})
	if err != nil {
		return nil, store.Humanize(err, "failed to load inquiry")
	}
	if len(recs) == 0 {
		return nil, nil
	}
	inq := models.InquiryFromRecord(recs[0])
	return &inq, nil
}

func (s *InquiryService) Create(ctx context.Context, inq *models.Inquiry) (string, error) {
	if inq.Status == "" {
		inq.Status = models.InquiryStatusNew
	}
	if !models.ValidInquiryStatuses[inq.Status] {
		return "", ErrInvalidStatus
	}
	if inq.CreatedAt.IsZero() {
		inq.CreatedAt = time.Now()
	}
	id, err := s.Store.Create(ctx, store.KindInquiry, store.Record{
		"name":       inq.Name,
		"status":     string(inq.Status),
		"email":      inq.Email,
		"phone":      inq.Phone,
		"created_at": inq.CreatedAt,
	})
	if err != nil {
		return "", store.Humanize(err, "failed to create inquiry")
	}
	inq.ID = id
	return id, nil
}

// UpdateStatus applies a direct status change from the detail page. Stage
// moves on the board go through the transition service instead.
func (s *InquiryService) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	if !models.ValidInquiryStatuses[status] {
		return ErrInvalidStatus
	}
	if err := s.Store.SetField(ctx, store.KindInquiry, id, "status", string(status)); err != nil {
		return store.Humanize(err, "failed to update inquiry status")
	}
	return nil
}
