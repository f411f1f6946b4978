package main

import (
	"log"
	"strings"

	"agropazar-backend/internal/admin"
	"agropazar-backend/internal/audit"
	"agropazar-backend/internal/auth"
	"agropazar-backend/internal/cache"
	"agropazar-backend/internal/config"
	"agropazar-backend/internal/database"
	"agropazar-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)
	rdb := config.NewRedisClient(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Tek tip hata zarfı: {"success": false, "message": ...}
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"success": false,
					"message": e.Message,
				})
			}
			log.Println("Beklenmeyen hata:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin rapor katmanı
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))
	// Raporlar saf okuma: başarılı GET yanıtları kısa TTL ile cache'lenir
	adminRoutes.Use(cache.New(rdb, cfg.CacheTTL))

	// Kullanıcı ve profil raporları
	adminRoutes.Get("/users", admin.ListUsersHandler())
	adminRoutes.Get("/farmers-with-crops", admin.FarmersWithCropsHandler())
	adminRoutes.Get("/customers-with-multiple-orders", admin.CustomersWithMultipleOrdersHandler())

	// Ürün ve mahsul raporları
	adminRoutes.Get("/products-by-type/:type", admin.ProductsByTypeHandler())
	adminRoutes.Get("/products-by-price-range", admin.ProductsByPriceRangeHandler())
	adminRoutes.Get("/available-products", admin.AvailableProductsHandler())
	adminRoutes.Get("/products-by-vendor-ratings", admin.ProductsByVendorRatingsHandler())
	adminRoutes.Get("/crops-for-sale", admin.CropsForSaleHandler())

	// Satış raporları
	adminRoutes.Get("/crop-sales", admin.CropSalesHandler())
	adminRoutes.Get("/vendor-product-counts", admin.VendorProductCountsHandler())
	adminRoutes.Get("/highly-rated-vendors", admin.HighlyRatedVendorsHandler())
	adminRoutes.Get("/most-sold-items", admin.MostSoldItemsHandler())

	// Sipariş raporları ve durum güncelleme
	adminRoutes.Get("/farmer-orders", admin.FarmerOrdersHandler())
	adminRoutes.Get("/orders", admin.AllOrdersHandler())
	adminRoutes.Get("/orders-by-year/:year?", admin.OrdersByYearHandler())
	adminRoutes.Post("/update-order-status/:orderId", admin.UpdateOrderStatusHandler(cfg))

	// İtiraz raporları ve çözümleme
	adminRoutes.Get("/disputes", admin.ListDisputesHandler())
	adminRoutes.Get("/farmers-with-multiple-disputes", admin.FarmersWithMultipleDisputesHandler())
	adminRoutes.Post("/resolve-dispute/:disputeId", admin.ResolveDisputeHandler())

	// Ad-hoc sorgu konsolu
	adminRoutes.Post("/execute-query", admin.ExecuteQueryHandler(cfg))

	// Audit logs
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
