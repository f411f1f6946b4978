package models

import "time"

// Product: bir satıcının (vendor) sunduğu ürün (tohum, gübre, ekipman vs.).
type Product struct {
	ID             string  `gorm:"primaryKey;size:20"`
	Name           string  `gorm:"size:100;not null"`
	Type           string  `gorm:"size:50;not null;index"`
	Description    string  `gorm:"size:255"`
	Price          float64 `gorm:"not null;default:0"`
	Quantity       int     `gorm:"not null;default:0"`
	Classification string  `gorm:"size:50"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VendorProduct struct {
	VendorID  string `gorm:"primaryKey;size:20"`
	ProductID string `gorm:"primaryKey;size:20"`
}

type VendorInventory struct {
	ID         uint   `gorm:"primaryKey"`
	VendorID   string `gorm:"size:20;index;not null"`
	ProductID  string `gorm:"size:20;index;not null"`
	StockLevel int    `gorm:"not null;default:0"`
	LowStock   bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
