package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		limit  int
		page   int
		offset int
	}{
		{"defaults", "", DefaultLimit, 1, 0},
		{"explicit", "page=3&limit=10", 10, 3, 20},
		{"limit clamped", "limit=1000", MaxLimit, 1, 0},
		{"negative limit", "limit=-4", DefaultLimit, 1, 0},
		{"garbage", "page=abc&limit=xyz", DefaultLimit, 1, 0},
		{"zero page", "page=0&limit=5", 5, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			p := ParsePagination(q)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.offset, p.Offset)
		})
	}
}

func TestComputeMeta(t *testing.T) {
	p := New(2, 10)
	p.ComputeMeta(25)

	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)

	last := New(3, 10)
	last.ComputeMeta(25)
	assert.False(t, last.HasNext)
}
