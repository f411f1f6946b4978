package models

import "time"

// Crop: bir çiftçinin sattığı mahsul.
type Crop struct {
	ID          string  `gorm:"primaryKey;size:20"`
	Type        string  `gorm:"size:50;not null;index"` // buğday, domates vs.
	Quantity    int     `gorm:"not null;default:0"`
	Price       float64 `gorm:"not null;default:0"`
	Description string  `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FarmerCrop: çiftçi-mahsul sahiplik ilişkisi (her mahsulün tek sahibi var).
type FarmerCrop struct {
	FarmerID string `gorm:"primaryKey;size:20"`
	CropID   string `gorm:"primaryKey;size:20"`
}

// FarmerInventory: çiftçi stok kaydı, düşük stok işaretiyle.
type FarmerInventory struct {
	ID         uint   `gorm:"primaryKey"`
	FarmerID   string `gorm:"size:20;index;not null"`
	CropID     string `gorm:"size:20;index;not null"`
	StockLevel int    `gorm:"not null;default:0"`
	LowStock   bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
