package models

import "encoding/json"

// StoreType represents a shop classification (e.g. restaurant, cafe)
type StoreType struct {
	BaseModel
	Name string `gorm:"type:varchar(50);unique;not null" json:"name"`
}

// Cuisine represents a cuisine scoped to one store type
type Cuisine struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);not null" json:"name"`
	StoreTypeID uint   `gorm:"not null;index" json:"store_type_id"`
}

// TaxonomyRef is a type or cuisine reference as upstream records carry it:
// either a bare name string or an embedded {id, name, store_type_id} object.
type TaxonomyRef struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	StoreTypeID uint   `json:"store_type_id,omitempty"`
}

// UnmarshalJSON accepts both encodings
func (r *TaxonomyRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		r.ID = 0
		r.Name = name
		return nil
	}

	type plain TaxonomyRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = TaxonomyRef(p)
	return nil
}
