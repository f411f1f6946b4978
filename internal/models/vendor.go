package models

import "time"

type Vendor struct {
	ID        string `gorm:"primaryKey;size:20"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:100;index"`
	Phone     string `gorm:"size:50"`
	Address   string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
