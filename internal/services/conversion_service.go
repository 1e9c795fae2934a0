package services

import (
	"context"
	"errors"

	"evermore/internal/models"
	"evermore/internal/store"
)

var ErrNotAnInquiry = errors.New("only inquiries can be converted")

// ConversionService creates the opportunity derived from an inquiry. The
// inquiry itself is not touched: it drops off the board because the new
// opportunity references it.
//
// Conversion is not idempotent. Retrying after a timeout on a call that
// actually succeeded creates a second opportunity for the same inquiry;
// check the opportunity list before retrying.
type ConversionService struct {
	Store store.Client
}

func NewConversionService(st store.Client) *ConversionService {
	return &ConversionService{Store: st}
}

// Convert issues a single create call and returns the new opportunity id.
func (s *ConversionService) Convert(ctx context.Context, item models.PipelineItem, target models.OpportunityStatus) (string, error) {
	if item.Type != models.ItemTypeInquiry {
		return "", ErrNotAnInquiry
	}

	values := store.Record{
		"source_inquiry_id": item.RecordID,
		"name":              item.Name,
		"status":            string(target),
		"email":             item.Email,
		"phone":             item.Phone,
	}
	oppID, err := s.Store.Create(ctx, store.KindOpportunity, values)
	if err != nil {
		return "", store.Humanize(err, "failed to convert inquiry")
	}
	return oppID, nil
}
