package models

import "time"

// Feedback: siparişe bağlı puan + yorum. ToID satıcı/çiftçi puan
// ortalamalarının kaynağı.
type Feedback struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uint      `gorm:"index;not null"`
	OrderType OrderType `gorm:"size:20;not null"`
	FromID    string    `gorm:"size:20;index;not null"` // puanı veren taraf
	ToID      string    `gorm:"size:20;index;not null"` // puanlanan taraf
	Rating    int       `gorm:"not null"`               // 1-5
	Comments  string    `gorm:"size:500"`
	CreatedAt time.Time
}
