package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty", "", 1},
		{"valid", "3", 3},
		{"zero", "0", 1},
		{"negative", "-2", 1},
		{"garbage", "abc", 1},
		{"float", "1.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePage(tt.raw))
		})
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		requested  int
		totalItems int64
		wantNumber int
		wantPages  int
		wantOffset int
	}{
		{"first of two", 1, 14, 1, 2, 0},
		{"last partial page", 2, 14, 2, 2, 10},
		{"exact boundary", 1, 10, 1, 1, 0},
		{"out of range clamps to last", 99, 14, 2, 2, 10},
		{"below range clamps to first", 0, 14, 1, 2, 0},
		{"empty set stays on page one", 5, 0, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, offset, limit := Paginate(tt.requested, tt.totalItems, DefaultPageSize)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, DefaultPageSize, limit)
			assert.Equal(t, tt.totalItems, page.TotalItems)
		})
	}
}

func TestPageNavigation(t *testing.T) {
	page, _, _ := Paginate(2, 25, DefaultPageSize)

	assert.True(t, page.HasPrevious())
	assert.True(t, page.HasNext())
	assert.Equal(t, 1, page.PreviousNumber())
	assert.Equal(t, 3, page.NextNumber())

	last, _, _ := Paginate(3, 25, DefaultPageSize)
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrevious())

	only, _, _ := Paginate(1, 5, DefaultPageSize)
	assert.False(t, only.HasNext())
	assert.False(t, only.HasPrevious())
}
