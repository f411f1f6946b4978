package admin

import (
	"agropazar-backend/internal/database"
	"agropazar-backend/internal/models"
	"agropazar-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	UserType string `json:"userType"`
	DarkMode bool   `json:"darkMode"`
	Created  string `json:"createdAt"`
}

// GET /api/admin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("id ASC").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar listelenemedi")
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, UserResponse{
				ID:       u.ID,
				Name:     u.Name,
				Email:    u.Email,
				Role:     string(u.Role),
				UserType: string(u.UserType),
				DarkMode: u.DarkMode,
				Created:  report.FormatDate(u.CreatedAt),
			})
		}

		return ok(c, resp)
	}
}

type FarmerCropItem struct {
	CropID   string  `json:"cropId"`
	CropType string  `json:"cropType"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type FarmerWithCrops struct {
	FarmerID   string           `json:"farmerId"`
	FarmerName string           `json:"farmerName"`
	Crops      []FarmerCropItem `json:"crops"`
}

// GET /api/admin/farmers-with-crops
// Çiftçi başına mahsul listesi. Tek sorgu, Go tarafında gruplama.
func FarmersWithCropsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type row struct {
			FarmerID   string   `gorm:"column:farmer_id"`
			FarmerName string   `gorm:"column:farmer_name"`
			CropID     *string  `gorm:"column:crop_id"`
			CropType   *string  `gorm:"column:crop_type"`
			Quantity   *int     `gorm:"column:quantity"`
			Price      *float64 `gorm:"column:price"`
		}
		var rows []row

		sql := `
			SELECT f.id AS farmer_id, f.name AS farmer_name,
			       c.id AS crop_id, c.type AS crop_type, c.quantity, c.price
			FROM farmers f
			LEFT JOIN farmer_crops fc ON fc.farmer_id = f.id
			LEFT JOIN crops c ON c.id = fc.crop_id
			ORDER BY f.name ASC, c.type ASC
		`
		if err := database.DB.Raw(sql).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çiftçi-mahsul raporu alınamadı")
		}

		byFarmer := make(map[string]*FarmerWithCrops)
		order := make([]string, 0)
		for _, r := range rows {
			f, exists := byFarmer[r.FarmerID]
			if !exists {
				f = &FarmerWithCrops{
					FarmerID:   r.FarmerID,
					FarmerName: r.FarmerName,
					Crops:      []FarmerCropItem{},
				}
				byFarmer[r.FarmerID] = f
				order = append(order, r.FarmerID)
			}
			// LEFT JOIN: mahsulü olmayan çiftçide crop alanları NULL gelir
			if r.CropID != nil {
				item := FarmerCropItem{CropID: *r.CropID}
				if r.CropType != nil {
					item.CropType = *r.CropType
				}
				if r.Quantity != nil {
					item.Quantity = *r.Quantity
				}
				if r.Price != nil {
					item.Price = *r.Price
				}
				f.Crops = append(f.Crops, item)
			}
		}

		resp := make([]FarmerWithCrops, 0, len(order))
		for _, id := range order {
			resp = append(resp, *byFarmer[id])
		}

		return ok(c, resp)
	}
}

type CustomerOrderCount struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	OrderCount   int64  `json:"orderCount"`
}

// GET /api/admin/customers-with-multiple-orders
// En az 3 siparişi olan müşteriler.
func CustomersWithMultipleOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []CustomerOrderCount

		sql := `
			SELECT cu.id AS customer_id, cu.name AS customer_name, cu.email,
			       COUNT(o.id) AS order_count
			FROM customers cu
			JOIN farmer_customer_orders o ON o.customer_id = cu.id
			GROUP BY cu.id, cu.name, cu.email
			HAVING COUNT(o.id) >= ?
			ORDER BY order_count DESC, cu.name ASC
		`
		if err := database.DB.Raw(sql, 3).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri sipariş raporu alınamadı")
		}

		if rows == nil {
			rows = []CustomerOrderCount{}
		}
		return ok(c, rows)
	}
}
