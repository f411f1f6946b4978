// Package cache: GET rapor yanıtları için Redis destekli cache middleware.
// Raporlar saf okuma olduğu için kısa bir TTL ile önbelleklenmeleri güvenli.
// Redis yoksa middleware devre dışı kalır ve istekler doğrudan geçer.
package cache

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "agropazar:report:"

func cacheKey(c *fiber.Ctx) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + string(c.Request().URI().QueryString())))
	return fmt.Sprintf("%s%x", keyPrefix, sum[:])
}

// New: başarılı JSON GET yanıtlarını ttl süresince Redis'te tutar.
// CSV/XLSX export gibi JSON olmayan yanıtlar önbelleklenmez.
func New(rdb *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil || c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := cacheKey(c)
		ctx := c.Context()

		if b, err := rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			c.Set("X-Cache", "HIT")
			return c.Send(b)
		}

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK &&
			strings.HasPrefix(string(c.Response().Header.ContentType()), fiber.MIMEApplicationJSON) {
			// fasthttp buffer'ı yeniden kullanır, kopyalamadan saklama
			body := append([]byte(nil), c.Response().Body()...)
			if err := rdb.Set(ctx, key, body, ttl).Err(); err == nil {
				c.Set("X-Cache", "MISS")
			}
		}

		return nil
	}
}
