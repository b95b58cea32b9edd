package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationQueryClamp(t *testing.T) {
	tests := []struct {
		name         string
		query        PaginationQuery
		wantPage     int
		wantPageSize int
	}{
		{"defaults when unset", PaginationQuery{}, 1, 10},
		{"valid values kept", PaginationQuery{Page: 3, PageSize: 25}, 3, 25},
		{"negative page reset", PaginationQuery{Page: -2, PageSize: 25}, 1, 25},
		{"zero page size reset", PaginationQuery{Page: 2, PageSize: 0}, 2, 10},
		{"oversized page size reset", PaginationQuery{Page: 2, PageSize: 500}, 2, 10},
		{"upper bound kept", PaginationQuery{Page: 1, PageSize: 100}, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Clamp()
			assert.Equal(t, tt.wantPage, tt.query.Page)
			assert.Equal(t, tt.wantPageSize, tt.query.PageSize)
		})
	}
}

func TestNewPaginationResult(t *testing.T) {
	data := []string{"a", "b", "c"}

	result := NewPaginationResult(23, 2, 10, data)
	assert.Equal(t, int64(23), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.PageSize)
	assert.Equal(t, int64(3), result.TotalPages)
	assert.Equal(t, data, result.Data)

	exact := NewPaginationResult(20, 1, 10, nil)
	assert.Equal(t, int64(2), exact.TotalPages)

	empty := NewPaginationResult(0, 1, 10, nil)
	assert.Equal(t, int64(0), empty.TotalPages)
}
