package admin

import (
	"fmt"
	"strconv"
	"strings"

	"agropazar-backend/internal/database"
	"agropazar-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

type ProductResponse struct {
	ProductID      string  `json:"productId"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	Classification string  `json:"classification"`
}

type productRow struct {
	ID             string
	Name           string
	Type           string
	Description    string
	Price          float64
	Quantity       int
	Classification string
}

func shapeProducts(rows []productRow) []ProductResponse {
	resp := make([]ProductResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, ProductResponse{
			ProductID:      r.ID,
			Name:           r.Name,
			Type:           r.Type,
			Description:    r.Description,
			Price:          r.Price,
			Quantity:       r.Quantity,
			Classification: r.Classification,
		})
	}
	return resp
}

// GET /api/admin/products-by-type/:type
// Tür karşılaştırması küçük harfe çevirerek, her zaman parametre bağlayarak.
func ProductsByTypeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		typ := strings.TrimSpace(c.Params("type"))
		if typ == "" {
			return fiber.NewError(fiber.StatusBadRequest, "type parametresi zorunlu")
		}

		var rows []productRow
		sql := `
			SELECT id, name, type, description, price, quantity, classification
			FROM products
			WHERE LOWER(type) = LOWER(?)
			ORDER BY name ASC
		`
		if err := database.DB.Raw(sql, typ).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		return ok(c, shapeProducts(rows))
	}
}

// parsePriceRange: min/max query parametrelerini doğrular.
// min > max geçerli kabul edilir; sorgu boş küme döner (hata değil).
func parsePriceRange(minStr, maxStr string) (float64, float64, error) {
	if minStr == "" || maxStr == "" {
		return 0, 0, fmt.Errorf("min ve max zorunlu")
	}
	// ParseFloat tüm string'i tüketir; "10abc" gibi kuyruklu girdiler geçemez
	min, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("min geçersiz")
	}
	max, err := strconv.ParseFloat(maxStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("max geçersiz")
	}
	if min < 0 || max < 0 {
		return 0, 0, fmt.Errorf("min ve max negatif olamaz")
	}
	return min, max, nil
}

// GET /api/admin/products-by-price-range?min=10&max=50
func ProductsByPriceRangeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		min, max, err := parsePriceRange(c.Query("min"), c.Query("max"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var rows []productRow
		sql := `
			SELECT id, name, type, description, price, quantity, classification
			FROM products
			WHERE price >= ? AND price <= ?
			ORDER BY price ASC, name ASC
		`
		if err := database.DB.Raw(sql, min, max).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		return ok(c, shapeProducts(rows))
	}
}

// GET /api/admin/available-products
// Stokta olan (quantity > 0) ürünler.
func AvailableProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []productRow
		sql := `
			SELECT id, name, type, description, price, quantity, classification
			FROM products
			WHERE quantity > 0
			ORDER BY name ASC
		`
		if err := database.DB.Raw(sql).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		return ok(c, shapeProducts(rows))
	}
}

type ProductWithVendorRating struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	VendorID   string  `json:"vendorId"`
	VendorName string  `json:"vendorName"`
	AvgRating  float64 `json:"avgRating"`
}

// GET /api/admin/products-by-vendor-ratings
// Ürünler, satıcısının ortalama puanına göre azalan sırada.
func ProductsByVendorRatingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type row struct {
			ProductID  string
			Name       string
			Type       string
			Price      float64
			Quantity   int
			VendorID   string
			VendorName string
			AvgRating  float64
		}
		var rows []row

		sql := `
			SELECT p.id AS product_id, p.name, p.type, p.price, p.quantity,
			       v.id AS vendor_id, v.name AS vendor_name,
			       COALESCE(AVG(f.rating), 0) AS avg_rating
			FROM products p
			JOIN vendor_products vp ON vp.product_id = p.id
			JOIN vendors v ON v.id = vp.vendor_id
			LEFT JOIN feedbacks f ON f.to_id = v.id
			GROUP BY p.id, p.name, p.type, p.price, p.quantity, v.id, v.name
			ORDER BY avg_rating DESC, p.name ASC
		`
		if err := database.DB.Raw(sql).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün-puan raporu alınamadı")
		}

		resp := make([]ProductWithVendorRating, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, ProductWithVendorRating{
				ProductID:  r.ProductID,
				Name:       r.Name,
				Type:       r.Type,
				Price:      r.Price,
				Quantity:   r.Quantity,
				VendorID:   r.VendorID,
				VendorName: r.VendorName,
				AvgRating:  report.Round2(r.AvgRating),
			})
		}

		return ok(c, resp)
	}
}

type CropForSale struct {
	CropID      string  `json:"cropId"`
	Type        string  `json:"type"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// GET /api/admin/crops-for-sale
// Satışta olan mahsuller, tür ve fiyata göre sıralı.
func CropsForSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type row struct {
			ID          string
			Type        string
			Quantity    int
			Price       float64
			Description string
		}
		var rows []row

		sql := `
			SELECT id, type, quantity, price, description
			FROM crops
			WHERE quantity > 0
			ORDER BY type ASC, price ASC
		`
		if err := database.DB.Raw(sql).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Mahsuller listelenemedi")
		}

		resp := make([]CropForSale, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, CropForSale{
				CropID:      r.ID,
				Type:        r.Type,
				Quantity:    r.Quantity,
				Price:       r.Price,
				Description: r.Description,
			})
		}

		return ok(c, resp)
	}
}
