package models

import "time"

// DeviceStatus represents the reported status of a device
type DeviceStatus string

const (
	DeviceStatusOnline  DeviceStatus = "online"
	DeviceStatusOffline DeviceStatus = "offline"
	DeviceStatusFault   DeviceStatus = "fault"
)

// Device represents a managed device. ID is the canonical key for every
// binding and lookup operation; DeviceID is the vendor-assigned label and
// is display-only.
type Device struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	DeviceID     string       `gorm:"type:varchar(50);not null" json:"device_id"`
	DeviceType   string       `gorm:"type:varchar(50)" json:"device_type"`
	SerialNumber string       `gorm:"type:varchar(50);unique;not null" json:"serial_number"`
	IsActive     bool         `gorm:"default:false" json:"is_active"`
	Status       DeviceStatus `gorm:"type:varchar(20);default:'offline'" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations
	Binding *ShopDeviceBinding `gorm:"foreignKey:DeviceID" json:"binding,omitempty"`
}
