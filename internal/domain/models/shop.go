package models

import "time"

// ShopStatus represents the approval state of a shop
type ShopStatus string

const (
	ShopStatusActive  ShopStatus = "active"
	ShopStatusPending ShopStatus = "pending"
)

// Shop represents a registered shop. The address is kept in the backend's
// flat comma-joined form; the structured form shape lives in ShopForm.
type Shop struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	Name                   string     `gorm:"type:varchar(100);not null" json:"name"`
	Description            string     `gorm:"type:text" json:"description"`
	PriceRange             string     `gorm:"type:varchar(20)" json:"price_range"`
	AveragePricePerPerson  float64    `json:"average_price_per_person"`
	Latitude               float64    `json:"latitude"`
	Longitude              float64    `json:"longitude"`
	Address                string     `gorm:"type:varchar(255)" json:"address"`
	PhoneNumber            string     `gorm:"type:varchar(20)" json:"phone_number"`
	Status                 ShopStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	HasAirPurifier         bool       `json:"has_air_purifier"`
	HasAirVentilator       bool       `json:"has_air_ventilator"`
	OwnerID                uint       `json:"owner_id"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`

	// Relations
	Types        []StoreType   `gorm:"many2many:shop_type_relations;" json:"types,omitempty"`
	Cuisines     []Cuisine     `gorm:"many2many:shop_cuisine_relations;" json:"cuisines,omitempty"`
	OpeningHours []OpeningHour `gorm:"foreignKey:ShopID" json:"opening_hours,omitempty"`
	Images       []ShopImage   `gorm:"foreignKey:ShopID" json:"images,omitempty"`
}

// OpeningHour represents one weekday entry of a shop's opening schedule
type OpeningHour struct {
	BaseModel
	ShopID    uint   `gorm:"not null;index" json:"shop_id"`
	DayOfWeek int    `gorm:"not null" json:"day_of_week"` // 0 (Sunday) - 6 (Saturday)
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `gorm:"type:varchar(5)" json:"open_time"`  // "HH:MM"
	CloseTime string `gorm:"type:varchar(5)" json:"close_time"` // "HH:MM"
}

// ShopImage represents one stored shop image, path relative to the media host
type ShopImage struct {
	BaseModel
	ShopID   uint   `gorm:"not null;index" json:"shop_id"`
	Path     string `gorm:"type:varchar(255);not null" json:"path"`
	Position int    `json:"position"`
}
