package models

import "time"

const (
	RoleAdmin       = "ADMIN"
	RoleBarber      = "BARBER"
	RoleAdminBarber = "ADMINBARBER"
	RoleClient      = "CLIENT"
)

// StaffRoles are the roles allowed on the authenticated CRM endpoints.
var StaffRoles = []string{RoleAdmin, RoleBarber, RoleAdminBarber}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleBarber, RoleAdminBarber, RoleClient:
		return true
	}
	return false
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'BARBER'" json:"role"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
