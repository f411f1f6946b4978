package admin

import "github.com/gofiber/fiber/v2"

// ok: tüm rapor endpoint'lerinin ortak başarı zarfı.
// Hata tarafı main'deki global error handler'da tek biçimde üretilir.
func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
