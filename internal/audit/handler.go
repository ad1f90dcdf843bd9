package audit

import (
	"fmt"

	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// -------------------------------------------------
// GET /api/admin/audit-logs?entity_type=meal_status&user_id=3&limit=50
// -------------------------------------------------
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if entityType := c.Query("entity_type"); entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}

		if userIDStr := c.Query("user_id"); userIDStr != "" {
			var userID uint
			if _, err := fmt.Sscan(userIDStr, &userID); err != nil || userID == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "user_id geçersiz")
			}
			dbq = dbq.Where("user_id = ?", userID)
		}

		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			if _, err := fmt.Sscan(limitStr, &limit); err != nil || limit <= 0 || limit > 500 {
				return fiber.NewError(fiber.StatusBadRequest, "limit geçersiz (1-500)")
			}
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at desc").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Loglar listelenemedi")
		}

		return c.JSON(logs)
	}
}
