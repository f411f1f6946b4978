package admin

import (
	"time"

	"agropazar-backend/internal/database"
	"agropazar-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

type DisputeSummary struct {
	DisputeID      uint   `json:"disputeId"`
	OrderType      string `json:"orderType"`
	OrderID        uint   `json:"orderId"`
	DisputeType    string `json:"disputeType"`
	Status         string `json:"status"`
	Details        string `json:"details"`
	Resolution     string `json:"resolution"`
	ResolutionDate string `json:"resolutionDate"`
	CreatedAt      string `json:"createdAt"`
}

// GET /api/admin/disputes
// İki itiraz tablosu tek listede, en yeni önce.
func ListDisputesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type row struct {
			DisputeID      uint
			OrderType      string
			OrderID        uint
			DisputeType    string
			Status         string
			Details        string
			Resolution     string
			ResolutionDate *time.Time
			CreatedAt      time.Time
		}
		var rows []row

		sql := `
			SELECT d.id AS dispute_id, 'farmer_customer' AS order_type, d.order_id,
			       d.dispute_type, d.status, d.details, d.resolution,
			       d.resolution_date, d.created_at
			FROM farmer_customer_disputes d
			UNION ALL
			SELECT d.id, 'vendor_farmer', d.order_id,
			       d.dispute_type, d.status, d.details, d.resolution,
			       d.resolution_date, d.created_at
			FROM vendor_farmer_disputes d
			ORDER BY created_at DESC
		`
		if err := database.DB.Raw(sql).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İtirazlar listelenemedi")
		}

		resp := make([]DisputeSummary, 0, len(rows))
		for _, r := range rows {
			d := DisputeSummary{
				DisputeID:   r.DisputeID,
				OrderType:   r.OrderType,
				OrderID:     r.OrderID,
				DisputeType: r.DisputeType,
				Status:      r.Status,
				Details:     r.Details,
				Resolution:  r.Resolution,
				CreatedAt:   report.FormatDate(r.CreatedAt),
			}
			if r.ResolutionDate != nil {
				d.ResolutionDate = report.FormatDate(*r.ResolutionDate)
			}
			resp = append(resp, d)
		}

		return ok(c, resp)
	}
}

type FarmerDisputeCount struct {
	FarmerID     string `json:"farmerId"`
	FarmerName   string `json:"farmerName"`
	DisputeCount int64  `json:"disputeCount"`
}

// GET /api/admin/farmers-with-multiple-disputes
// İki tarafta da itiraz alabilen çiftçiler: müşteriye satışta satıcı,
// vendordan alımda alıcı. İki taraf birleştirilip çiftçi bazında sayılır.
func FarmersWithMultipleDisputesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []FarmerDisputeCount

		sql := `
			SELECT f.id AS farmer_id, f.name AS farmer_name, COUNT(*) AS dispute_count
			FROM (
				SELECT o.farmer_id
				FROM farmer_customer_disputes d
				JOIN farmer_customer_orders o ON o.id = d.order_id
				UNION ALL
				SELECT o.farmer_id
				FROM vendor_farmer_disputes d
				JOIN vendor_farmer_orders o ON o.id = d.order_id
			) fd
			JOIN farmers f ON f.id = fd.farmer_id
			GROUP BY f.id, f.name
			HAVING COUNT(*) >= ?
			ORDER BY dispute_count DESC, f.name ASC
		`
		if err := database.DB.Raw(sql, 2).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çiftçi itiraz raporu alınamadı")
		}

		if rows == nil {
			rows = []FarmerDisputeCount{}
		}
		return ok(c, rows)
	}
}
