package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agropazar-backend/internal/config"
	"agropazar-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret!"

func newTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"success": false, "message": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
		},
	})

	adminRoutes := app.Group("/api/admin")
	adminRoutes.Use(JWTMiddleware(cfg))
	adminRoutes.Use(RequireRole(models.RoleAdmin))
	adminRoutes.Get("/users", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	return app
}

func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAdminRoutes_Unauthenticated(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	app := newTestApp(cfg)

	resp := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutes_InvalidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	app := newTestApp(cfg)

	resp := doRequest(t, app, "bozuk.token.degeri")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutes_WrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	app := newTestApp(cfg)

	// Başka bir secret ile imzalanmış token reddedilir
	other, err := GenerateToken("baska-bir-secret-baska-bir-secret!!", &models.User{
		ID: 1, Email: "admin@example.com", Role: models.RoleAdmin, UserType: models.UserTypeAdmin,
	})
	require.NoError(t, err)

	resp := doRequest(t, app, other)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutes_NonAdminForbidden(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	app := newTestApp(cfg)

	token, err := GenerateToken(cfg.JWTSecret, &models.User{
		ID: 2, Email: "ciftci@example.com", Role: models.RoleUser, UserType: models.UserTypeFarmer,
	})
	require.NoError(t, err)

	resp := doRequest(t, app, token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminRoutes_AdminAllowed(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	app := newTestApp(cfg)

	token, err := GenerateToken(cfg.JWTSecret, &models.User{
		ID: 1, Email: "admin@example.com", Role: models.RoleAdmin, UserType: models.UserTypeAdmin,
	})
	require.NoError(t, err)

	resp := doRequest(t, app, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
