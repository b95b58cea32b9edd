package models

import "time"

// User represents an end user managed through the console
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password    string    `gorm:"type:varchar(100);not null" json:"-"`
	DisplayName string    `gorm:"type:varchar(100)" json:"display_name"`
	Email       string    `gorm:"type:varchar(100)" json:"email"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone"`
	Status      string    `gorm:"type:varchar(20);default:'active'" json:"status"` // active, suspended
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Shops []Shop `gorm:"foreignKey:OwnerID" json:"shops,omitempty"`
}
