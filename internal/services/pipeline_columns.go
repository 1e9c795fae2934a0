package services

import "evermore/internal/models"

// Pipeline board columns, in display order. A column with an empty target
// for a type means a drop of that type is not a plain status update there:
// the opportunity-only columns (opportunity, quotation) trigger conversion,
// and the meeting column is intercepted for inquiries.
var PipelineColumns = []models.Column{
	{
		Key:             "new",
		Label:           "New",
		Color:           "#8d99ae",
		InquiryStatuses: []models.InquiryStatus{models.InquiryStatusNew},
		InquiryTarget:   models.InquiryStatusNew,
	},
	{
		Key:             "contacted",
		Label:           "Contacted",
		Color:           "#457b9d",
		InquiryStatuses: []models.InquiryStatus{models.InquiryStatusOpen, models.InquiryStatusReplied},
		InquiryTarget:   models.InquiryStatusOpen,
	},
	{
		Key:             "meeting",
		Label:           "Meeting",
		Color:           "#e9c46a",
		InquiryStatuses: []models.InquiryStatus{models.InquiryStatusInterested},
		InquiryTarget:   models.InquiryStatusInterested,
	},
	{
		Key:                 "opportunity",
		Label:               "Opportunity",
		Color:               "#f4a261",
		OpportunityStatuses: []models.OpportunityStatus{models.OpportunityStatusOpen},
		OpportunityTarget:   models.OpportunityStatusOpen,
	},
	{
		Key:                 "quotation",
		Label:               "Quotation",
		Color:               "#e76f51",
		OpportunityStatuses: []models.OpportunityStatus{models.OpportunityStatusQuotation},
		OpportunityTarget:   models.OpportunityStatusQuotation,
	},
	{
		Key:   "closed",
		Label: "Closed",
		Color: "#2a9d8f",
		InquiryStatuses: []models.InquiryStatus{
			models.InquiryStatusLostQuote, models.InquiryStatusDoNotContact,
		},
		OpportunityStatuses: []models.OpportunityStatus{
			models.OpportunityStatusConverted, models.OpportunityStatusLost, models.OpportunityStatusClosed,
		},
		InquiryTarget:     models.InquiryStatusLostQuote,
		OpportunityTarget: models.OpportunityStatusClosed,
	},
}

const (
	// DefaultColumnKey catches statuses no column lists. An unmodeled status
	// must never make an item disappear from the board.
	DefaultColumnKey = "new"
	// MeetingColumnKey is the intercepted stage: an inquiry dropped here
	// needs a scheduled meeting before its status changes.
	MeetingColumnKey = "meeting"
)

// Statuses an item may never be dragged out of.
var lockedInquiryStatuses = map[models.InquiryStatus]bool{
	models.InquiryStatusOpportunity: true,
	models.InquiryStatusConverted:   true,
}

var lockedOpportunityStatuses = map[models.OpportunityStatus]bool{
	models.OpportunityStatusConverted: true,
	models.OpportunityStatusLost:      true,
	models.OpportunityStatusClosed:    true,
}

// Inquiries in these statuses are never shown on the board, linked
// opportunity or not.
var hiddenInquiryStatuses = map[models.InquiryStatus]bool{
	models.InquiryStatusConverted:   true,
	models.InquiryStatusOpportunity: true,
	models.InquiryStatusQuotation:   true,
}

func ColumnByKey(key string) (models.Column, bool) {
	for _, col := range PipelineColumns {
		if col.Key == key {
			return col, true
		}
	}
	return models.Column{}, false
}

// ResolveColumn maps an item to its column. Total: any status not listed in
// the table lands in the default column.
func ResolveColumn(item models.PipelineItem) models.Column {
	for _, col := range PipelineColumns {
		switch item.Type {
		case models.ItemTypeInquiry:
			if col.HasInquiryStatus(models.InquiryStatus(item.Status)) {
				return col
			}
		case models.ItemTypeOpportunity:
			if col.HasOpportunityStatus(models.OpportunityStatus(item.Status)) {
				return col
			}
		}
	}
	def, _ := ColumnByKey(DefaultColumnKey)
	return def
}

// TargetStatus returns the status a drop into col applies for the given item
// type, or "" when the column defines none for it.
func TargetStatus(col models.Column, t models.ItemType) string {
	switch t {
	case models.ItemTypeInquiry:
		return string(col.InquiryTarget)
	case models.ItemTypeOpportunity:
		return string(col.OpportunityTarget)
	}
	return ""
}

// IsLocked reports whether an item's status is terminal for drag purposes.
func IsLocked(t models.ItemType, status string) bool {
	switch t {
	case models.ItemTypeInquiry:
		return lockedInquiryStatuses[models.InquiryStatus(status)]
	case models.ItemTypeOpportunity:
		return lockedOpportunityStatuses[models.OpportunityStatus(status)]
	}
	return false
}
