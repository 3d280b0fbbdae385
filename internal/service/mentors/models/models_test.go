package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
)

func TestToDomainFilterNormalizesPaging(t *testing.T) {
	filter := (&ListMentorsRequest{}).ToDomainFilter()
	assert.Equal(t, domain.DefaultPage, filter.Page)
	assert.Equal(t, domain.DefaultLimit, filter.Limit)

	filter = (&ListMentorsRequest{Page: 3, Limit: domain.MaxLimit + 50}).ToDomainFilter()
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, domain.MaxLimit, filter.Limit)
}

func TestExperienceRanges(t *testing.T) {
	ranges := ExperienceRanges()
	require.Len(t, ranges, 4)
	assert.Equal(t, ExperienceRange{Label: "0-2 years", Value: 0}, ranges[0])
	assert.Equal(t, ExperienceRange{Label: "3-5 years", Value: 3}, ranges[1])
	assert.Equal(t, ExperienceRange{Label: "6-10 years", Value: 6}, ranges[2])
	assert.Equal(t, ExperienceRange{Label: "10+ years", Value: 10}, ranges[3])
}

func TestFilterOptionsResponseShape(t *testing.T) {
	resp := FilterOptionsResponse{
		Specializations:  []string{"Career Guidance"},
		Locations:        []string{"Bangalore"},
		ExperienceRanges: ExperienceRanges(),
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "specializations")
	assert.Contains(t, decoded, "locations")
	assert.Contains(t, decoded, "experienceRanges")
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(42, 1, 20, 20)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(42), p.TotalCount)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)

	p = NewPagination(42, 3, 20, 2)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}
