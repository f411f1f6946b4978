package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus: durum enum'u kapalı küme, yazmadan önce burada kontrol edilir.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderType string

const (
	OrderTypeFarmerCustomer OrderType = "farmer_customer" // çiftçi müşteriye mahsul satar
	OrderTypeVendorFarmer   OrderType = "vendor_farmer"   // satıcı çiftçiye ürün satar
)

func ValidOrderType(t OrderType) bool {
	return t == OrderTypeFarmerCustomer || t == OrderTypeVendorFarmer
}

// FarmerCustomerOrder: çiftçiden müşteriye mahsul siparişi.
type FarmerCustomerOrder struct {
	ID         uint        `gorm:"primaryKey"`
	FarmerID   string      `gorm:"size:20;index;not null"`
	CustomerID string      `gorm:"size:20;index;not null"`
	CropID     string      `gorm:"size:20;index;not null"`
	Status     OrderStatus `gorm:"size:20;not null;default:pending"`
	Quantity   int         `gorm:"not null"`
	OrderDate  time.Time   `gorm:"index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VendorFarmerOrder: satıcıdan çiftçiye ürün siparişi.
type VendorFarmerOrder struct {
	ID        uint        `gorm:"primaryKey"`
	VendorID  string      `gorm:"size:20;index;not null"`
	FarmerID  string      `gorm:"size:20;index;not null"`
	ProductID string      `gorm:"size:20;index;not null"`
	Status    OrderStatus `gorm:"size:20;not null;default:pending"`
	Quantity  int         `gorm:"not null"`
	OrderDate time.Time   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
