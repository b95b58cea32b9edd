package models

// Province is the root of the address hierarchy. Reference data is read-only
// after seeding; names are kept in Thai as the upstream dataset carries them.
type Province struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	NameTH string `gorm:"type:varchar(100);not null;column:name_th" json:"name_th"`

	Districts []District `gorm:"foreignKey:ProvinceID" json:"amphure,omitempty"`
}

// District belongs to a province
type District struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ProvinceID uint   `gorm:"not null;index" json:"province_id"`
	NameTH     string `gorm:"type:varchar(100);not null;column:name_th" json:"name_th"`

	Subdistricts []Subdistrict `gorm:"foreignKey:DistrictID" json:"tambon,omitempty"`
}

// Subdistrict belongs to a district and carries the postal code
type Subdistrict struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	DistrictID uint   `gorm:"not null;index" json:"district_id"`
	NameTH     string `gorm:"type:varchar(100);not null;column:name_th" json:"name_th"`
	ZipCode    string `gorm:"type:varchar(5)" json:"zip_code"`
}
