package models

import "time"

// Farmer: giriş kimliğinden (User) ayrı tutulan çiftçi profili.
// ID'ler "F001" biçiminde string, eski sistemle uyumlu.
type Farmer struct {
	ID        string `gorm:"primaryKey;size:20"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:100;index"`
	Phone     string `gorm:"size:50"`
	Address   string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
