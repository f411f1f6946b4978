package models

import "time"

type DisputeType string

const (
	DisputeTypeQuality  DisputeType = "quality"
	DisputeTypeDelivery DisputeType = "delivery"
	DisputeTypePayment  DisputeType = "payment"
	DisputeTypeOther    DisputeType = "other"
)

type DisputeStatus string

const (
	DisputeStatusOpen          DisputeStatus = "open"
	DisputeStatusInvestigating DisputeStatus = "investigating"
	DisputeStatusResolved      DisputeStatus = "resolved"
	DisputeStatusClosed        DisputeStatus = "closed"
)

func ValidDisputeStatus(s DisputeStatus) bool {
	switch s {
	case DisputeStatusOpen, DisputeStatusInvestigating,
		DisputeStatusResolved, DisputeStatusClosed:
		return true
	}
	return false
}

// FarmerCustomerDispute: çiftçi-müşteri siparişine açılan itiraz.
type FarmerCustomerDispute struct {
	ID             uint          `gorm:"primaryKey"`
	OrderID        uint          `gorm:"index;not null"`
	DisputeType    DisputeType   `gorm:"size:20;not null"`
	Status         DisputeStatus `gorm:"size:20;not null;default:open"`
	Details        string        `gorm:"size:500"`
	Resolution     string        `gorm:"size:500"`
	ResolutionDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// VendorFarmerDispute: satıcı-çiftçi siparişine açılan itiraz.
type VendorFarmerDispute struct {
	ID             uint          `gorm:"primaryKey"`
	OrderID        uint          `gorm:"index;not null"`
	DisputeType    DisputeType   `gorm:"size:20;not null"`
	Status         DisputeStatus `gorm:"size:20;not null;default:open"`
	Details        string        `gorm:"size:500"`
	Resolution     string        `gorm:"size:500"`
	ResolutionDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
