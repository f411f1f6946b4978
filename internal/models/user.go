package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type UserType string

const (
	UserTypeFarmer   UserType = "farmer"
	UserTypeCustomer UserType = "customer"
	UserTypeVendor   UserType = "vendor"
	UserTypeAdmin    UserType = "admin"
)

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"size:100;not null"`
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null;default:user"`
	UserType     UserType `gorm:"size:20;not null"`
	DarkMode     bool     `gorm:"default:false"` // arayüz tercihi
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
