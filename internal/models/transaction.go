package models

import "time"

// Transaction: siparişe 1:1 bağlı ödeme kaydı.
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`
	OrderID     uint      `gorm:"index;not null"`
	OrderType   OrderType `gorm:"size:20;not null"`
	PaymentMode string    `gorm:"size:30;not null"` // cash / card / transfer
	Amount      float64   `gorm:"not null"`
	Commission  float64   `gorm:"not null;default:0"`
	CreatedAt   time.Time
}
