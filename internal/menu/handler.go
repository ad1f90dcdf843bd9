package menu

import (
	"time"

	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SlotResponse struct {
	Main          string `json:"main"`
	Cost          string `json:"cost"`
	ContainsBeef  bool   `json:"contains_beef,omitempty"`
	ContainsFish  bool   `json:"contains_fish,omitempty"`
	Alternate     string `json:"alternate,omitempty"`
	AlternateCost string `json:"alternate_cost,omitempty"`
}

type MenuDayResponse struct {
	DayOfWeek string       `json:"day_of_week"`
	Breakfast SlotResponse `json:"breakfast"`
	Lunch     SlotResponse `json:"lunch"`
	Dinner    SlotResponse `json:"dinner"`
}

func toMenuDayResponse(m *models.WeeklyMenu) MenuDayResponse {
	return MenuDayResponse{
		DayOfWeek: m.DayOfWeek,
		Breakfast: SlotResponse{
			Main: m.BreakfastMain,
			Cost: m.BreakfastCost.StringFixed(2),
		},
		Lunch: SlotResponse{
			Main:          m.LunchMain,
			Cost:          m.LunchCost.StringFixed(2),
			ContainsBeef:  m.LunchContainsBeef,
			ContainsFish:  m.LunchContainsFish,
			Alternate:     m.LunchAlternate,
			AlternateCost: m.LunchCostAlternate.StringFixed(2),
		},
		Dinner: SlotResponse{
			Main:          m.DinnerMain,
			Cost:          m.DinnerCost.StringFixed(2),
			ContainsBeef:  m.DinnerContainsBeef,
			ContainsFish:  m.DinnerContainsFish,
			Alternate:     m.DinnerAlternate,
			AlternateCost: m.DinnerCostAlternate.StringFixed(2),
		},
	}
}

// -------------------------------------------------
// GET /api/menu
// Haftalık menü, Pazartesi'den Pazar'a
// -------------------------------------------------
func ListWeeklyMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		menus, err := FullWeek(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü listelenemedi")
		}

		resp := make([]MenuDayResponse, 0, len(menus))
		for i := range menus {
			resp = append(resp, toMenuDayResponse(&menus[i]))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/menu/today
// -------------------------------------------------
func TodayMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		weekday := time.Now().Weekday().String()

		m, err := ForWeekday(database.DB, weekday)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü alınamadı")
		}
		if m == nil {
			return fiber.NewError(fiber.StatusNotFound, "Bugün için menü tanımlanmamış")
		}

		return c.JSON(toMenuDayResponse(m))
	}
}
