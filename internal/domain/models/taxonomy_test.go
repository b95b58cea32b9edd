package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyRefUnmarshalString(t *testing.T) {
	var ref TaxonomyRef
	require.NoError(t, json.Unmarshal([]byte(`"ร้านอาหาร"`), &ref))

	assert.Equal(t, uint(0), ref.ID)
	assert.Equal(t, "ร้านอาหาร", ref.Name)
}

func TestTaxonomyRefUnmarshalObject(t *testing.T) {
	var ref TaxonomyRef
	require.NoError(t, json.Unmarshal([]byte(`{"id":10,"name":"อาหารไทย","store_type_id":1}`), &ref))

	assert.Equal(t, uint(10), ref.ID)
	assert.Equal(t, "อาหารไทย", ref.Name)
	assert.Equal(t, uint(1), ref.StoreTypeID)
}

func TestTaxonomyRefUnmarshalMixedList(t *testing.T) {
	var refs []TaxonomyRef
	payload := `["ร้านอาหาร", {"id":2,"name":"คาเฟ่"}]`
	require.NoError(t, json.Unmarshal([]byte(payload), &refs))

	require.Len(t, refs, 2)
	assert.Equal(t, TaxonomyRef{Name: "ร้านอาหาร"}, refs[0])
	assert.Equal(t, TaxonomyRef{ID: 2, Name: "คาเฟ่"}, refs[1])
}

func TestTaxonomyRefUnmarshalInvalid(t *testing.T) {
	var ref TaxonomyRef
	assert.Error(t, json.Unmarshal([]byte(`42`), &ref))
}
