package models

import "time"

type AuditAction string

const (
	AuditActionUpdateStatus   AuditAction = "update_status"
	AuditActionResolveDispute AuditAction = "resolve_dispute"
	AuditActionExecuteQuery   AuditAction = "execute_query"
)

// AuditLog: admin işlemlerinin izi. Raporlar salt okunur olduğu için
// sadece mutasyonlar ve konsol sorguları loglanır.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Hangi kullanıcı?
	UserID    uint   `gorm:"index" json:"user_id"`
	UserEmail string `gorm:"size:100" json:"user_email"` // denormalize

	// Hangi entity? (ör: "farmer_customer_order", "vendor_farmer_dispute")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	Action AuditAction `gorm:"size:30" json:"action"`

	// Kısa özet
	Description string `gorm:"size:255" json:"description"`

	// Konsol sorguları için sorgu metni
	QueryText string `gorm:"type:text" json:"query_text"`

	// Önceki ve sonraki hal (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
