package services

import (
	"context"

	"evermore/internal/models"
	"evermore/internal/store"
)

// OpportunityService backs the opportunity list/detail pages. There is no
// Create here: opportunities are created by the conversion service only.
type OpportunityService struct {
	Store store.Client
}

func NewOpportunityService(st store.Client) *OpportunityService {
	return &OpportunityService{Store: st}
}

func (s *OpportunityService) List(ctx context.Context, status string) ([]models.Opportunity, error) {
	filters := store.Filters{}
	if status != "" {
		filters["status"] = status
	}
	recs, err := s.Store.List(ctx, store.KindOpportunity, filters)
	if err != nil {
		return nil, store.Humanize(err, "failed to list opportunities")
	}
	out := make([]models.Opportunity, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.OpportunityFromRecord(r))
	}
	return out, nil
}

func (s *OpportunityService) GetByID(ctx context.Context, id string) (*models.Opportunity, error) {
	recs, err := s.Store.List(ctx, store.KindOpportunity, store.Filters{"id": id})
	if err != nil {
		return nil, store.Humanize(err, "failed to load opportunity")
	}
	if len(recs) == 0 {
		return nil, nil
	}
	opp := models.OpportunityFromRecord(recs[0])
	return &opp, nil
}

func (s *OpportunityService) UpdateStatus(ctx context.Context, id string, status models.OpportunityStatus) error {
	if !models.ValidOpportunityStatuses[status] {
		return ErrInvalidStatus
	}
	if err := s.Store.SetField(ctx, store.KindOpportunity, id, "status", string(status)); err != nil {
		return store.Humanize(err, "failed to update opportunity status")
	}
	return nil
}
