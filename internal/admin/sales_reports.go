package admin

import (
	"strconv"

	"agropazar-backend/internal/database"
	"agropazar-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

type CropSales struct {
	CropID        string  `json:"cropId"`
	CropType      string  `json:"cropType"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// shapeCropSales: SUM kolonları sürücüden numeric (string) ya da int64
// gelebilir; zorlama report yardımcılarıyla yapılır.
func shapeCropSales(rows []map[string]interface{}) []CropSales {
	resp := make([]CropSales, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, CropSales{
			CropID:        report.ToString(r["crop_id"]),
			CropType:      report.ToString(r["crop_type"]),
			TotalQuantity: report.ToInt64(r["total_quantity"]),
			TotalRevenue:  report.Round2(report.ToFloat64(r["total_revenue"])),
		})
	}
	return resp
}

// GET /api/admin/crop-sales
// Mahsul başına satış adedi ve ciro. İptal edilen siparişler sayılmaz.
func CropSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []map[string]interface{}

		sql := `
			SELECT c.id AS crop_id, c.type AS crop_type,
			       SUM(o.quantity) AS total_quantity,
			       SUM(o.quantity * c.price) AS total_revenue
			FROM farmer_customer_orders o
			JOIN crops c ON c.id = o.crop_id
			WHERE o.status <> ?
			GROUP BY c.id, c.type
			ORDER BY total_revenue DESC
		`
		if err := database.DB.Raw(sql, "cancelled").Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Mahsul satış raporu alınamadı")
		}

		return ok(c, shapeCropSales(rows))
	}
}

type VendorProductCount struct {
	VendorID     string  `json:"vendorId"`
	VendorName   string  `json:"vendorName"`
	ProductCount int64   `json:"productCount"`
	AvgRating    float64 `json:"avgRating"`
}

// GET /api/admin/vendor-product-counts
func VendorProductCountsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type row struct {
			VendorID     string
			VendorName   string
			ProductCount int64
			AvgRating    float64
		}
		var rows []row

		sql := `
			SELECT v.id AS vendor_id, v.name AS vendor_name,
			       COUNT(DISTINCT vp.product_id) AS product_count,
			       COALESCE(AVG(f.rating), 0) AS avg_rating
			FROM vendors v
			LEFT JOIN vendor_products vp ON vp.vendor_id = v.id
			LEFT JOIN feedbacks f ON f.to_id = v.id
			GROUP BY v.id, v.name
			ORDER BY product_count DESC, v.name ASC
		`
		if err := database.DB.Raw(sql).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satıcı ürün raporu alınamadı")
		}

		resp := make([]VendorProductCount, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, VendorProductCount{
				VendorID:     r.VendorID,
				VendorName:   r.VendorName,
				ProductCount: r.ProductCount,
				AvgRating:    report.Round2(r.AvgRating),
			})
		}

		return ok(c, resp)
	}
}

type HighlyRatedVendor struct {
	VendorID      string  `json:"vendorId"`
	VendorName    string  `json:"vendorName"`
	AvgRating     float64 `json:"avgRating"`
	FeedbackCount int64   `json:"feedbackCount"`
}

// GET /api/admin/highly-rated-vendors?min_rating=4
// Ortalama puanı eşiğin üzerindeki satıcılar. Varsayılan eşik 4.0.
func HighlyRatedVendorsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		minRating := 4.0
		if s := c.Query("min_rating"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil || v < 0 || v > 5 {
				return fiber.NewError(fiber.StatusBadRequest, "min_rating geçersiz (0-5 arası olmalı)")
			}
			minRating = v
		}

		type row struct {
			VendorID      string
			VendorName    string
			AvgRating     float64
			FeedbackCount int64
		}
		var rows []row

		sql := `
			SELECT v.id AS vendor_id, v.name AS vendor_name,
			       AVG(f.rating) AS avg_rating,
			       COUNT(f.id) AS feedback_count
			FROM vendors v
			JOIN feedbacks f ON f.to_id = v.id
			GROUP BY v.id, v.name
			HAVING AVG(f.rating) >= ?
			ORDER BY avg_rating DESC
		`
		if err := database.DB.Raw(sql, minRating).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satıcı puan raporu alınamadı")
		}

		resp := make([]HighlyRatedVendor, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, HighlyRatedVendor{
				VendorID:      r.VendorID,
				VendorName:    r.VendorName,
				AvgRating:     report.Round2(r.AvgRating),
				FeedbackCount: r.FeedbackCount,
			})
		}

		return ok(c, resp)
	}
}

type MostSoldItem struct {
	ItemID            string  `json:"itemId"`
	ItemName          string  `json:"itemName"`
	Category          string  `json:"category"`
	TotalSold         int64   `json:"totalSold"`
	Revenue           float64 `json:"revenue"`
	PercentageOfSales float64 `json:"percentageOfSales"`
}

// queryMostSoldItems: en çok satan ilk 8 ürün. Yüzde payı SQL'de değil
// burada, dönen satırların toplamı üzerinden hesaplanır.
func queryMostSoldItems() ([]MostSoldItem, error) {
	type row struct {
		ItemID    string
		ItemName  string
		Category  string
		TotalSold int64
		Revenue   float64
	}
	var rows []row

	sql := `
		SELECT p.id AS item_id, p.name AS item_name, p.type AS category,
		       SUM(o.quantity) AS total_sold,
		       SUM(o.quantity * p.price) AS revenue
		FROM vendor_farmer_orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.status <> ?
		GROUP BY p.id, p.name, p.type
		ORDER BY total_sold DESC, revenue DESC
		LIMIT 8
	`
	if err := database.DB.Raw(sql, "cancelled").Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]MostSoldItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, MostSoldItem{
			ItemID:    r.ItemID,
			ItemName:  r.ItemName,
			Category:  r.Category,
			TotalSold: r.TotalSold,
			Revenue:   report.Round2(r.Revenue),
		})
	}

	return applySalesPercentages(items), nil
}

// applySalesPercentages: her satırın toplam satış içindeki payını yazar.
func applySalesPercentages(items []MostSoldItem) []MostSoldItem {
	var total float64
	for _, it := range items {
		total += float64(it.TotalSold)
	}
	for i := range items {
		items[i].PercentageOfSales = report.PercentageOf(float64(items[i].TotalSold), total)
	}
	return items
}

// GET /api/admin/most-sold-items[?format=csv|xlsx]
func MostSoldItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := queryMostSoldItems()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış raporu alınamadı")
		}

		switch c.Query("format") {
		case "csv":
			return sendMostSoldCSV(c, items)
		case "xlsx":
			return sendMostSoldXLSX(c, items)
		case "":
			return ok(c, items)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "format geçersiz (csv veya xlsx)")
		}
	}
}
