package audit

import (
	"agropazar-backend/internal/database"
	"agropazar-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/admin/audit-logs?limit=100&action=execute_query
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		q := database.DB.Model(&models.AuditLog{}).Order("created_at DESC").Limit(limit)
		if action := c.Query("action"); action != "" {
			q = q.Where("action = ?", action)
		}

		var logs []models.AuditLog
		if err := q.Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Audit logları listelenemedi")
		}

		return c.JSON(fiber.Map{"success": true, "data": logs})
	}
}
