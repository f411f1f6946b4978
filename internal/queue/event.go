package queue

import "time"

// OrderStatusUpdatedEvent: admin bir sipariş durumunu değiştirdiğinde
// "order.status.updated" kuyruğuna yayınlanan olay. Bildirim servisi
// bu kuyruğu tüketir.
type OrderStatusUpdatedEvent struct {
	OrderID   uint      `json:"order_id"`
	OrderType string    `json:"order_type"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	UpdatedBy string    `json:"updated_by"` // admin email
	UpdatedAt time.Time `json:"updated_at"`
}
