package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"evermore/internal/models"
)

func TestResolveColumn_MappedStatuses(t *testing.T) {
	cases := []struct {
		itemType models.ItemType
		status   string
		want     string
	}{
		{models.ItemTypeInquiry, "new", "new"},
		{models.ItemTypeInquiry, "open", "contacted"},
		{models.ItemTypeInquiry, "replied", "contacted"},
		{models.ItemTypeInquiry, "interested", "meeting"},
		{models.ItemTypeInquiry, "lost_quotation", "closed"},
		{models.ItemTypeInquiry, "do_not_contact", "closed"},
		{models.ItemTypeOpportunity, "open", "opportunity"},
		{models.ItemTypeOpportunity, "quotation", "quotation"},
		{models.ItemTypeOpportunity, "converted", "closed"},
		{models.ItemTypeOpportunity, "lost", "closed"},
		{models.ItemTypeOpportunity, "closed", "closed"},
	}
	for _, tc := range cases {
		col := ResolveColumn(models.PipelineItem{Type: tc.itemType, Status: tc.status})
		assert.Equal(t, tc.want, col.Key, "%s/%s", tc.itemType, tc.status)
	}
}

func TestResolveColumn_Total(t *testing.T) {
	// unmodeled statuses must never make an item disappear
	for _, status := range []string{"", "weird_status", "On Hold", "quotation "} {
		for _, itemType := range []models.ItemType{models.ItemTypeInquiry, models.ItemTypeOpportunity} {
			col := ResolveColumn(models.PipelineItem{Type: itemType, Status: status})
			assert.Equal(t, DefaultColumnKey, col.Key, "%s/%q", itemType, status)
		}
	}
	// a cross-type status falls through too: "interested" is not an
	// opportunity status
	col := ResolveColumn(models.PipelineItem{Type: models.ItemTypeOpportunity, Status: "interested"})
	assert.Equal(t, DefaultColumnKey, col.Key)
}

func TestTargetStatus(t *testing.T) {
	meeting, ok := ColumnByKey("meeting")
	assert.True(t, ok)
	assert.Equal(t, "interested", TargetStatus(meeting, models.ItemTypeInquiry))
	assert.Equal(t, "", TargetStatus(meeting, models.ItemTypeOpportunity))

	quotation, _ := ColumnByKey("quotation")
	assert.Equal(t, "", TargetStatus(quotation, models.ItemTypeInquiry))
	assert.Equal(t, "quotation", TargetStatus(quotation, models.ItemTypeOpportunity))

	closed, _ := ColumnByKey("closed")
	assert.Equal(t, "lost_quotation", TargetStatus(closed, models.ItemTypeInquiry))
	assert.Equal(t, "closed", TargetStatus(closed, models.ItemTypeOpportunity))
}

func TestColumnByKey_Unknown(t *testing.T) {
	_, ok := ColumnByKey("backlog")
	assert.False(t, ok)
}

func TestIsLocked(t *testing.T) {
	assert.True(t, IsLocked(models.ItemTypeInquiry, "opportunity"))
	assert.True(t, IsLocked(models.ItemTypeInquiry, "converted"))
	assert.False(t, IsLocked(models.ItemTypeInquiry, "interested"))
	assert.False(t, IsLocked(models.ItemTypeInquiry, "do_not_contact"))

	assert.True(t, IsLocked(models.ItemTypeOpportunity, "converted"))
	assert.True(t, IsLocked(models.ItemTypeOpportunity, "lost"))
	assert.True(t, IsLocked(models.ItemTypeOpportunity, "closed"))
	assert.False(t, IsLocked(models.ItemTypeOpportunity, "open"))
	assert.False(t, IsLocked(models.ItemTypeOpportunity, "quotation"))
}
