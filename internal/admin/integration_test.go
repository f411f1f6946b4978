//go:build integration
// +build integration

package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"agropazar-backend/internal/config"
	"agropazar-backend/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupIntegrationDB: geçici bir Postgres container'ı başlatır, şemayı
// kurar ve demo verisini yükler. `go test -tags integration` ile çalışır.
func setupIntegrationDB(t *testing.T) (*config.Config, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("agropazar_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Postgres container başlatılamadı")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{
		DatabaseDSN:    connStr,
		QueryTimeoutMS: 5000,
		SeedDemoData:   true,
	}
	database.Init(cfg)

	cleanup := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Container kapatılamadı: %v", err)
		}
	}
	return cfg, cleanup
}

// newReportTestApp: rapor handler'larını main'deki hata zarfıyla bağlar.
// Auth katmanı middleware_test'te ayrıca kapsandığı için burada yok.
func newReportTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"success": false,
					"message": e.Message,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Beklenmeyen sunucu hatası",
			})
		},
	})

	app.Get("/api/admin/orders-by-year/:year?", OrdersByYearHandler())
	app.Get("/api/admin/products-by-price-range", ProductsByPriceRangeHandler())
	app.Get("/api/admin/crop-sales", CropSalesHandler())
	app.Post("/api/admin/execute-query", ExecuteQueryHandler(cfg))

	return app
}

type listEnvelope struct {
	Success bool                     `json:"success"`
	Data    []map[string]interface{} `json:"data"`
}

func getList(t *testing.T, app *fiber.App, url string) (int, listEnvelope) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env listEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func TestAdminReportsIntegration(t *testing.T) {
	cfg, cleanup := setupIntegrationDB(t)
	defer cleanup()

	app := newReportTestApp(cfg)

	t.Run("orders by year returns only that year", func(t *testing.T) {
		status, env := getList(t, app, "/api/admin/orders-by-year/2024")
		require.Equal(t, http.StatusOK, status)
		assert.True(t, env.Success)
		// Demo verisinde 2024'e ait bir müşteri ve bir çiftçi siparişi var
		require.Len(t, env.Data, 2)
		for _, o := range env.Data {
			date, _ := o["orderDate"].(string)
			assert.True(t, strings.HasPrefix(date, "2024-"), "2024 dışı sipariş döndü: %v", o)
		}
	})

	t.Run("orders by year unknown year is empty not error", func(t *testing.T) {
		status, env := getList(t, app, "/api/admin/orders-by-year/2030")
		require.Equal(t, http.StatusOK, status)
		assert.True(t, env.Success)
		assert.NotNil(t, env.Data)
		assert.Empty(t, env.Data)
	})

	t.Run("orders by year defaults when param missing", func(t *testing.T) {
		status, env := getList(t, app, "/api/admin/orders-by-year")
		require.Equal(t, http.StatusOK, status)
		require.Len(t, env.Data, 8)
		for _, o := range env.Data {
			date, _ := o["orderDate"].(string)
			assert.True(t, strings.HasPrefix(date, "2025-"))
		}
	})

	t.Run("price range filters inclusively", func(t *testing.T) {
		status, env := getList(t, app, "/api/admin/products-by-price-range?min=300&max=500")
		require.Equal(t, http.StatusOK, status)
		// 320 (P004) ve 450 (P001), fiyata göre artan sırada
		require.Len(t, env.Data, 2)
		assert.Equal(t, "P004", env.Data[0]["productId"])
		assert.Equal(t, "P001", env.Data[1]["productId"])
	})

	t.Run("price range min greater than max yields empty set", func(t *testing.T) {
		status, env := getList(t, app, "/api/admin/products-by-price-range?min=500&max=300")
		require.Equal(t, http.StatusOK, status)
		assert.True(t, env.Success)
		assert.Empty(t, env.Data)
	})

	t.Run("crop sales coerces driver sum columns", func(t *testing.T) {
		status, env := getList(t, app, "/api/admin/crop-sales")
		require.Equal(t, http.StatusOK, status)
		require.NotEmpty(t, env.Data)
		// En yüksek ciro CR001: 80 adet * 8.50 = 680, iptal edilen sipariş hariç
		top := env.Data[0]
		assert.Equal(t, "CR001", top["cropId"])
		assert.Equal(t, float64(80), top["totalQuantity"])
		assert.Equal(t, 680.0, top["totalRevenue"])
	})

	t.Run("execute query select returns rows in envelope", func(t *testing.T) {
		payload := bytes.NewBufferString(`{"query": "SELECT 1 AS one"}`)
		req, err := http.NewRequest(http.MethodPost, "/api/admin/execute-query", payload)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var out struct {
			Success  bool                     `json:"success"`
			Columns  []string                 `json:"columns"`
			Result   []map[string]interface{} `json:"result"`
			RowCount int                      `json:"rowCount"`
		}
		require.NoError(t, json.Unmarshal(body, &out))
		assert.True(t, out.Success)
		assert.Equal(t, []string{"one"}, out.Columns)
		assert.Equal(t, 1, out.RowCount)
		require.Len(t, out.Result, 1)
	})

	t.Run("execute query rejects mutation", func(t *testing.T) {
		payload := bytes.NewBufferString(`{"query": "DELETE FROM products"}`)
		req, err := http.NewRequest(http.MethodPost, "/api/admin/execute-query", payload)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
