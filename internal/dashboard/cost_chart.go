package dashboard

import (
	"time"

	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/mealpref"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CostChartPoint struct {
	Label   string `json:"label"` // tarih
	Total   string `json:"total"`
	OnCount int    `json:"on_count"` // o gün en az bir öğünü açık öğrenci sayısı
}

type CostChartResponse struct {
	Month      string           `json:"month"`
	Points     []CostChartPoint `json:"points"`
	GrandTotal string           `json:"grand_total"`
}

// GET /api/admin/dashboard/cost-chart?month=2025-04
// Ayın gün bazlı toplam yemek maliyeti (DailyMealCost cache'inden)
func CostChartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		monthStr := c.Query("month", mealpref.MonthString(now))

		monthStart, err := time.ParseInLocation(mealpref.MonthLayout, monthStr, now.Location())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "month formatı geçersiz, 'YYYY-MM' olmalı")
		}
		monthEnd := monthStart.AddDate(0, 1, -1)

		var costs []models.DailyMealCost
		if err := database.DB.Where("date >= ? AND date <= ?", monthStart, monthEnd).
			Order("date asc").
			Find(&costs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Maliyetler listelenemedi")
		}

		var statuses []models.DailyMealStatus
		if err := database.DB.Where("date >= ? AND date <= ?", monthStart, monthEnd).
			Find(&statuses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öğün durumları listelenemedi")
		}

		totals := make(map[string]decimal.Decimal)
		for i := range costs {
			key := costs[i].Date.Format("2006-01-02")
			totals[key] = totals[key].Add(costs[i].TotalCost)
		}

		onCounts := make(map[string]int)
		for i := range statuses {
			if statuses[i].AnyOn() {
				onCounts[statuses[i].Date.Format("2006-01-02")]++
			}
		}

		resp := CostChartResponse{Month: monthStr}
		grand := decimal.Zero

		for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			total := totals[key]
			grand = grand.Add(total)
			resp.Points = append(resp.Points, CostChartPoint{
				Label:   key,
				Total:   total.StringFixed(2),
				OnCount: onCounts[key],
			})
		}

		resp.GrandTotal = grand.StringFixed(2)
		return c.JSON(resp)
	}
}
