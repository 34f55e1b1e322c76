package models

import "time"

type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint   `json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	// Date is the normalized business day the sale belongs to; CreatedAt
	// keeps the precise instant.
	Date          time.Time  `json:"date"`
	Total         float64    `json:"total"`
	PaymentMethod string     `gorm:"size:20;default:'cash'" json:"payment_method"`
	Items         []SaleItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaleItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	SaleID uint `json:"sale_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Quantity int     `gorm:"default:1" json:"quantity"`
	Price    float64 `json:"price"`
}
