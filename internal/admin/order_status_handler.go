package admin

import (
	"fmt"
	"time"

	"agropazar-backend/internal/audit"
	"agropazar-backend/internal/auth"
	"agropazar-backend/internal/config"
	"agropazar-backend/internal/database"
	"agropazar-backend/internal/models"
	"agropazar-backend/internal/queue"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status    models.OrderStatus `json:"status"`
	OrderType models.OrderType   `json:"orderType"`
}

// POST /api/admin/update-order-status/:orderId
// Rapor katmanındaki tek sipariş mutasyonu. Durum enum'u yazmadan önce
// doğrulanır; hedef yoksa 404. Değişiklik audit'e yazılır ve broker
// tanımlıysa bildirim kuyruğuna yayınlanır.
func UpdateOrderStatusHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := c.ParamsInt("orderId")
		if err != nil || orderID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "orderId geçersiz")
		}

		var body UpdateOrderStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if !models.ValidOrderStatus(body.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "status geçersiz")
		}
		if !models.ValidOrderType(body.OrderType) {
			return fiber.NewError(fiber.StatusBadRequest, "orderType geçersiz")
		}

		var oldStatus models.OrderStatus

		switch body.OrderType {
		case models.OrderTypeFarmerCustomer:
			var order models.FarmerCustomerOrder
			if err := database.DB.First(&order, uint(orderID)).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş sorgulanamadı")
			}
			oldStatus = order.Status
			if err := database.DB.Model(&order).Update("status", body.Status).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş güncellenemedi")
			}
		case models.OrderTypeVendorFarmer:
			var order models.VendorFarmerOrder
			if err := database.DB.First(&order, uint(orderID)).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş sorgulanamadı")
			}
			oldStatus = order.Status
			if err := database.DB.Model(&order).Update("status", body.Status).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş güncellenemedi")
			}
		}

		userID, userEmail := auth.CurrentUser(c)

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserEmail:   userEmail,
			EntityType:  string(body.OrderType) + "_order",
			EntityID:    uint(orderID),
			Action:      models.AuditActionUpdateStatus,
			Description: fmt.Sprintf("Sipariş durumu güncellendi: %s -> %s", oldStatus, body.Status),
			Before:      fiber.Map{"status": oldStatus},
			After:       fiber.Map{"status": body.Status},
		})

		// Best-effort yayın; broker hatası isteği düşürmez
		_ = queue.PublishOrderStatusUpdated(c.Context(), cfg.RabbitMQURL, queue.OrderStatusUpdatedEvent{
			OrderID:   uint(orderID),
			OrderType: string(body.OrderType),
			OldStatus: string(oldStatus),
			NewStatus: string(body.Status),
			UpdatedBy: userEmail,
			UpdatedAt: time.Now().UTC(),
		})

		return ok(c, fiber.Map{
			"orderId":   orderID,
			"orderType": body.OrderType,
			"oldStatus": oldStatus,
			"newStatus": body.Status,
		})
	}
}

type ResolveDisputeRequest struct {
	Status     models.DisputeStatus `json:"status"`
	Resolution string               `json:"resolution"`
	OrderType  models.OrderType     `json:"orderType"`
}

// POST /api/admin/resolve-dispute/:disputeId
// Admin itiraz durumunu günceller; resolved/closed durumlarında
// çözüm tarihi damgalanır.
func ResolveDisputeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		disputeID, err := c.ParamsInt("disputeId")
		if err != nil || disputeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "disputeId geçersiz")
		}

		var body ResolveDisputeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if !models.ValidDisputeStatus(body.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "status geçersiz")
		}
		if !models.ValidOrderType(body.OrderType) {
			return fiber.NewError(fiber.StatusBadRequest, "orderType geçersiz")
		}

		updates := map[string]interface{}{
			"status":     body.Status,
			"resolution": body.Resolution,
		}
		if body.Status == models.DisputeStatusResolved || body.Status == models.DisputeStatusClosed {
			now := time.Now()
			updates["resolution_date"] = &now
		}

		var oldStatus models.DisputeStatus

		switch body.OrderType {
		case models.OrderTypeFarmerCustomer:
			var d models.FarmerCustomerDispute
			if err := database.DB.First(&d, uint(disputeID)).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return fiber.NewError(fiber.StatusNotFound, "İtiraz bulunamadı")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "İtiraz sorgulanamadı")
			}
			oldStatus = d.Status
			if err := database.DB.Model(&d).Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "İtiraz güncellenemedi")
			}
		case models.OrderTypeVendorFarmer:
			var d models.VendorFarmerDispute
			if err := database.DB.First(&d, uint(disputeID)).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return fiber.NewError(fiber.StatusNotFound, "İtiraz bulunamadı")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "İtiraz sorgulanamadı")
			}
			oldStatus = d.Status
			if err := database.DB.Model(&d).Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "İtiraz güncellenemedi")
			}
		}

		userID, userEmail := auth.CurrentUser(c)
		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserEmail:   userEmail,
			EntityType:  string(body.OrderType) + "_dispute",
			EntityID:    uint(disputeID),
			Action:      models.AuditActionResolveDispute,
			Description: fmt.Sprintf("İtiraz durumu güncellendi: %s -> %s", oldStatus, body.Status),
			Before:      fiber.Map{"status": oldStatus},
			After:       fiber.Map{"status": body.Status, "resolution": body.Resolution},
		})

		return ok(c, fiber.Map{
			"disputeId": disputeID,
			"orderType": body.OrderType,
			"oldStatus": oldStatus,
			"newStatus": body.Status,
		})
	}
}
