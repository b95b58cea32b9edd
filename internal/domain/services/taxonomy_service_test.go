package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopdesk-http-service/internal/domain/models"
)

func TestPruneOrphanCuisines(t *testing.T) {
	all := []models.Cuisine{
		cuisine(10, "อาหารไทย", 1),
		cuisine(11, "อาหารอีสาน", 1),
		cuisine(20, "กาแฟ", 2),
		cuisine(21, "เบเกอรี่", 2),
	}

	cases := []struct {
		name     string
		types    []uint
		cuisines []uint
		want     []uint
	}{
		{
			name:     "all in scope",
			types:    []uint{1, 2},
			cuisines: []uint{10, 20},
			want:     []uint{10, 20},
		},
		{
			name:     "type removed drops its cuisines",
			types:    []uint{1},
			cuisines: []uint{10, 11, 20, 21},
			want:     []uint{10, 11},
		},
		{
			name:     "no types drops everything",
			types:    nil,
			cuisines: []uint{10, 20},
			want:     []uint{},
		},
		{
			name:     "unknown cuisine id dropped",
			types:    []uint{1},
			cuisines: []uint{10, 999},
			want:     []uint{10},
		},
		{
			name:     "empty selection stays empty",
			types:    []uint{1},
			cuisines: nil,
			want:     []uint{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PruneOrphanCuisines(tc.types, tc.cuisines, all)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateSelectionRequiresType(t *testing.T) {
	svc := &TaxonomyService{}

	assert.ErrorIs(t, svc.ValidateSelection(nil, nil), ErrNoTypeSelected)
	assert.ErrorIs(t, svc.ValidateSelection([]uint{}, nil), ErrNoTypeSelected)

	// the empty type set is rejected before the cuisines are even looked at
	assert.ErrorIs(t, svc.ValidateSelection(nil, []uint{10, 11}), ErrNoTypeSelected)
}

func TestValidateSelectionAllowsEmptyCuisines(t *testing.T) {
	svc := &TaxonomyService{}

	assert.NoError(t, svc.ValidateSelection([]uint{1}, nil))
}

func TestCheckCuisineScope(t *testing.T) {
	cuisines := []models.Cuisine{
		cuisine(10, "อาหารไทย", 1),
		cuisine(20, "กาแฟ", 2),
	}

	assert.NoError(t, checkCuisineScope([]uint{1, 2}, cuisines))

	err := checkCuisineScope([]uint{1}, cuisines)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "กาแฟ")
}

func TestPruneOrphanCuisinesKeepsOrder(t *testing.T) {
	all := []models.Cuisine{
		cuisine(10, "อาหารไทย", 1),
		cuisine(11, "อาหารอีสาน", 1),
	}

	got := PruneOrphanCuisines([]uint{1}, []uint{11, 10}, all)
	assert.Equal(t, []uint{11, 10}, got)
}
