package cache

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Redis yapılandırılmamışken middleware tamamen şeffaf olmalı.
func TestCacheMiddleware_DisabledWithoutRedis(t *testing.T) {
	app := fiber.New()

	calls := 0
	app.Use(New(nil, time.Minute))
	app.Get("/report", func(c *fiber.Ctx) error {
		calls++
		return c.JSON(fiber.Map{"success": true})
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/report", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("X-Cache"))
	}
	assert.Equal(t, 2, calls)
}

func TestCacheKey_IncludesQueryString(t *testing.T) {
	app := fiber.New()

	var keys []string
	app.Get("/r", func(c *fiber.Ctx) error {
		keys = append(keys, cacheKey(c))
		return c.SendStatus(fiber.StatusOK)
	})

	for _, target := range []string{"/r?year=2024", "/r?year=2025", "/r?year=2024"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
	}

	require.Len(t, keys, 3)
	// Farklı query farklı anahtar, aynı query aynı anahtar üretmeli
	assert.NotEqual(t, keys[0], keys[1])
	assert.Equal(t, keys[0], keys[2])
}
