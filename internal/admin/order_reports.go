package admin

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"agropazar-backend/internal/database"
	"agropazar-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

type FarmerOrder struct {
	OrderID     uint    `json:"orderId"`
	FarmerID    string  `json:"farmerId"`
	FarmerName  string  `json:"farmerName"`
	VendorID    string  `json:"vendorId"`
	VendorName  string  `json:"vendorName"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Status      string  `json:"status"`
	OrderDate   string  `json:"orderDate"`
}

// GET /api/admin/farmer-orders
// Çiftçilerin satıcılardan verdiği siparişler.
func FarmerOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type row struct {
			OrderID     uint
			FarmerID    string
			FarmerName  string
			VendorID    string
			VendorName  string
			ProductID   string
			ProductName string
			Quantity    int
			UnitPrice   float64
			Status      string
			OrderDate   time.Time
		}
		var rows []row

		sql := `
			SELECT o.id AS order_id,
			       o.farmer_id, f.name AS farmer_name,
			       o.vendor_id, v.name AS vendor_name,
			       o.product_id, p.name AS product_name,
			       o.quantity, p.price AS unit_price,
			       o.status, o.order_date
			FROM vendor_farmer_orders o
			JOIN farmers f ON f.id = o.farmer_id
			JOIN vendors v ON v.id = o.vendor_id
			JOIN products p ON p.id = o.product_id
			ORDER BY o.order_date DESC
		`
		if err := database.DB.Raw(sql).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çiftçi siparişleri alınamadı")
		}

		resp := make([]FarmerOrder, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, FarmerOrder{
				OrderID:     r.OrderID,
				FarmerID:    r.FarmerID,
				FarmerName:  r.FarmerName,
				VendorID:    r.VendorID,
				VendorName:  r.VendorName,
				ProductID:   r.ProductID,
				ProductName: r.ProductName,
				Quantity:    r.Quantity,
				UnitPrice:   r.UnitPrice,
				Status:      r.Status,
				OrderDate:   report.FormatDate(r.OrderDate),
			})
		}

		return ok(c, resp)
	}
}

type DenormalizedOrder struct {
	OrderID      uint     `json:"orderId"`
	CustomerName string   `json:"customerName"`
	FarmerName   string   `json:"farmerName"`
	Status       string   `json:"status"`
	OrderDate    string   `json:"orderDate"`
	Items        []string `json:"items"`
}

// GET /api/admin/orders
// Tüm çiftçi-müşteri siparişleri; kalemler SQL tarafında json_agg ile
// toplanır, handler isim listesine düzleştirir.
func AllOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type row struct {
			OrderID      uint
			CustomerName string
			FarmerName   string
			Status       string
			OrderDate    time.Time
			Items        string
		}
		var rows []row

		sql := `
			SELECT o.id AS order_id,
			       cu.name AS customer_name,
			       f.name AS farmer_name,
			       o.status, o.order_date,
			       json_agg(json_build_object(
			           'id', cr.id,
			           'name', cr.type,
			           'quantity', o.quantity
			       )) AS items
			FROM farmer_customer_orders o
			JOIN customers cu ON cu.id = o.customer_id
			JOIN farmers f ON f.id = o.farmer_id
			JOIN crops cr ON cr.id = o.crop_id
			GROUP BY o.id, cu.name, f.name, o.status, o.order_date
			ORDER BY o.order_date DESC
		`
		if err := database.DB.Raw(sql).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler alınamadı")
		}

		resp := make([]DenormalizedOrder, 0, len(rows))
		for _, r := range rows {
			var items []struct {
				Name     string `json:"name"`
				Quantity int    `json:"quantity"`
			}
			names := []string{}
			if err := json.Unmarshal([]byte(r.Items), &items); err == nil {
				for _, it := range items {
					names = append(names, it.Name)
				}
			}

			resp = append(resp, DenormalizedOrder{
				OrderID:      r.OrderID,
				CustomerName: r.CustomerName,
				FarmerName:   r.FarmerName,
				Status:       r.Status,
				OrderDate:    report.FormatDate(r.OrderDate),
				Items:        names,
			})
		}

		return ok(c, resp)
	}
}

type OrderSummary struct {
	OrderID    uint   `json:"orderId"`
	OrderType  string `json:"orderType"`
	BuyerName  string `json:"buyerName"`
	SellerName string `json:"sellerName"`
	ItemName   string `json:"itemName"`
	Quantity   int    `json:"quantity"`
	Status     string `json:"status"`
	OrderDate  string `json:"orderDate"`

	orderedAt time.Time
}

// parseYearParam: yıl parametresini doğrular, boşsa varsayılan 2025.
func parseYearParam(s string) (int, error) {
	if s == "" {
		return 2025, nil
	}
	// Atoi tüm string'i tüketir; "2024x" gibi kuyruklu girdiler geçemez
	year, err := strconv.Atoi(s)
	if err != nil || year < 1900 || year > 2100 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
	}
	return year, nil
}

// GET /api/admin/orders-by-year/:year?
// İki sipariş tablosu ayrı ayrı sorgulanır, ortak özet şekline
// normalize edilip tarihe göre azalan sırada birleştirilir.
// Bilinmeyen yıl hata değil, boş liste döndürür.
func OrdersByYearHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := parseYearParam(c.Params("year"))
		if err != nil {
			return err
		}

		type fcRow struct {
			OrderID      uint
			CustomerName string
			FarmerName   string
			CropType     string
			Quantity     int
			Status       string
			OrderDate    time.Time
		}
		var fcRows []fcRow

		fcSQL := `
			SELECT o.id AS order_id,
			       cu.name AS customer_name,
			       f.name AS farmer_name,
			       cr.type AS crop_type,
			       o.quantity, o.status, o.order_date
			FROM farmer_customer_orders o
			JOIN customers cu ON cu.id = o.customer_id
			JOIN farmers f ON f.id = o.farmer_id
			JOIN crops cr ON cr.id = o.crop_id
			WHERE EXTRACT(YEAR FROM o.order_date) = ?
		`
		if err := database.DB.Raw(fcSQL, year).Scan(&fcRows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yıllık sipariş raporu alınamadı")
		}

		type vfRow struct {
			OrderID     uint
			FarmerName  string
			VendorName  string
			ProductName string
			Quantity    int
			Status      string
			OrderDate   time.Time
		}
		var vfRows []vfRow

		vfSQL := `
			SELECT o.id AS order_id,
			       f.name AS farmer_name,
			       v.name AS vendor_name,
			       p.name AS product_name,
			       o.quantity, o.status, o.order_date
			FROM vendor_farmer_orders o
			JOIN farmers f ON f.id = o.farmer_id
			JOIN vendors v ON v.id = o.vendor_id
			JOIN products p ON p.id = o.product_id
			WHERE EXTRACT(YEAR FROM o.order_date) = ?
		`
		if err := database.DB.Raw(vfSQL, year).Scan(&vfRows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yıllık sipariş raporu alınamadı")
		}

		merged := make([]OrderSummary, 0, len(fcRows)+len(vfRows))
		for _, r := range fcRows {
			merged = append(merged, OrderSummary{
				OrderID:    r.OrderID,
				OrderType:  "farmer_customer",
				BuyerName:  r.CustomerName,
				SellerName: r.FarmerName,
				ItemName:   r.CropType,
				Quantity:   r.Quantity,
				Status:     r.Status,
				OrderDate:  report.FormatDate(r.OrderDate),
				orderedAt:  r.OrderDate,
			})
		}
		for _, r := range vfRows {
			merged = append(merged, OrderSummary{
				OrderID:    r.OrderID,
				OrderType:  "vendor_farmer",
				BuyerName:  r.FarmerName,
				SellerName: r.VendorName,
				ItemName:   r.ProductName,
				Quantity:   r.Quantity,
				Status:     r.Status,
				OrderDate:  report.FormatDate(r.OrderDate),
				orderedAt:  r.OrderDate,
			})
		}

		sort.Slice(merged, func(i, j int) bool {
			return merged[j].orderedAt.Before(merged[i].orderedAt)
		})

		return ok(c, merged)
	}
}
