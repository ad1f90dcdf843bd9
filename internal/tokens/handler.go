package tokens

import (
	"time"

	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/mealcost"
	"yemekhane-backend/internal/mealpref"
	"yemekhane-backend/internal/menu"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Fiş (token) dağıtımı: sorumlu, günün menüsü ile öğrencinin çözümlenmiş
// tercihine bakarak ana yemek mi alternatif mi vereceğini görür.
// QR/barkod üretimi burada yok; sadece tip ve etiket hesaplanır.

type SlotToken struct {
	Slot models.MealSlot `json:"slot"`
	Type string          `json:"type"` // "main" | "alternate"
	Item string          `json:"item"`
	Cost string          `json:"cost"`
}

type StudentTokens struct {
	StudentID   uint      `json:"student_id"`
	StudentName string    `json:"student_name"`
	RoomNumber  string    `json:"room_number"`
	MealType    string    `json:"meal_type"`
	Lunch       SlotToken `json:"lunch"`
	Dinner      SlotToken `json:"dinner"`
}

// MealTypeLabel: mutfağın kullandığı tabela etiketi
func MealTypeLabel(prefersBeef, prefersFish bool) string {
	if prefersBeef && prefersFish {
		return "Beef + Fish"
	}
	if !prefersBeef && prefersFish {
		return "Mutton + Fish"
	}
	if prefersBeef && !prefersFish {
		return "Beef + Egg"
	}
	return "Mutton + Egg"
}

func slotToken(slot models.MealSlot, containsBeef, containsFish, prefersBeef, prefersFish bool, main, alternate string, mainCost, altCost string) SlotToken {
	if mealcost.UsesAlternate(containsBeef, containsFish, prefersBeef, prefersFish) {
		return SlotToken{Slot: slot, Type: "alternate", Item: alternate, Cost: altCost}
	}
	return SlotToken{Slot: slot, Type: "main", Item: main, Cost: mainCost}
}

// -------------------------------------------------
// GET /api/manager/meal-tokens?date=2025-04-12
// Tarih boşsa bugün; o günün menüsüne göre öğrenci başına fiş tipi
// -------------------------------------------------
func ListMealTokensHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		date := now
		if dStr := c.Query("date"); dStr != "" {
			d, err := time.ParseInLocation("2006-01-02", dStr, now.Location())
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date formatı geçersiz, 'YYYY-MM-DD' olmalı")
			}
			date = d
		}

		m, err := menu.ForWeekday(database.DB, date.Weekday().String())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü alınamadı")
		}
		if m == nil {
			return fiber.NewError(fiber.StatusNotFound, "Bu gün için menü tanımlanmamış")
		}

		var students []models.Student
		if err := database.DB.Order("room_number asc").Find(&students).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öğrenciler listelenemedi")
		}

		monthStr := mealpref.MonthString(date)

		resp := make([]StudentTokens, 0, len(students))
		for i := range students {
			s := &students[i]

			beef, fish, rerr := mealpref.Resolve(database.DB, s, monthStr)
			if rerr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Tercih çözümlenemedi")
			}

			resp = append(resp, StudentTokens{
				StudentID:   s.ID,
				StudentName: s.Name,
				RoomNumber:  s.RoomNumber,
				MealType:    MealTypeLabel(beef, fish),
				Lunch: slotToken(models.SlotLunch,
					m.LunchContainsBeef, m.LunchContainsFish, beef, fish,
					m.LunchMain, m.LunchAlternate,
					m.LunchCost.StringFixed(2), m.LunchCostAlternate.StringFixed(2)),
				Dinner: slotToken(models.SlotDinner,
					m.DinnerContainsBeef, m.DinnerContainsFish, beef, fish,
					m.DinnerMain, m.DinnerAlternate,
					m.DinnerCost.StringFixed(2), m.DinnerCostAlternate.StringFixed(2)),
			})
		}

		return c.JSON(fiber.Map{
			"date":   date.Format("2006-01-02"),
			"tokens": resp,
		})
	}
}
