package models

// ShopDeviceBinding represents the association between one device and one
// shop. The unique index on DeviceID enforces that a device is bound to at
// most one shop at a time.
type ShopDeviceBinding struct {
	BaseModel
	ShopID     uint   `gorm:"not null;index" json:"shop_id"`
	DeviceID   uint   `gorm:"not null;uniqueIndex" json:"device_id"`
	DeviceType string `gorm:"type:varchar(50)" json:"device_type"` // snapshot taken at bind time
	CCDC       bool   `gorm:"default:false" json:"ccdc"`

	// Relations
	Shop   *Shop   `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	Device *Device `gorm:"foreignKey:DeviceID" json:"device,omitempty"`
}
