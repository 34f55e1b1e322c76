package models

import "time"

// Walk-in or registered customer. Phone is the natural key used by the
// public booking flow, so it is indexed.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Phone     string `gorm:"size:20;index" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
