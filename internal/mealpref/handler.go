package mealpref

import (
	"fmt"
	"time"

	"yemekhane-backend/internal/audit"
	"yemekhane-backend/internal/auth"
	"yemekhane-backend/internal/cutoff"
	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PreferenceResponse struct {
	Month       string `json:"month"`
	PrefersBeef bool   `json:"prefers_beef"`
	PrefersFish bool   `json:"prefers_fish"`
}

type MyPreferencesResponse struct {
	Current      PreferenceResponse `json:"current"`
	Next         PreferenceResponse `json:"next"`
	CutoffPassed bool               `json:"cutoff_passed"`
	CutoffAt     string             `json:"cutoff_at"`
}

type UpdatePreferenceRequest struct {
	PrefersBeef bool `json:"prefers_beef"`
	PrefersFish bool `json:"prefers_fish"`
}

// -------------------------------------------------
// GET /api/students/me/meal-preference
// Bu ayın ve gelecek ayın tercihi; yoksa oluşturulur (materialize)
// -------------------------------------------------
func MyPreferencesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		now := time.Now()
		currentMonth := MonthString(now)
		nextMonth := MonthString(NextMonthOf(now))

		currentPref, err := GetOrCreate(database.DB, student, currentMonth)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tercih kaydı alınamadı")
		}

		nextPref, err := GetOrCreate(database.DB, student, nextMonth)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tercih kaydı alınamadı")
		}

		return c.JSON(MyPreferencesResponse{
			Current: PreferenceResponse{
				Month:       currentPref.Month,
				PrefersBeef: currentPref.PrefersBeef,
				PrefersFish: currentPref.PrefersFish,
			},
			Next: PreferenceResponse{
				Month:       nextPref.Month,
				PrefersBeef: nextPref.PrefersBeef,
				PrefersFish: nextPref.PrefersFish,
			},
			CutoffPassed: !cutoff.NextMonthPrefAllowed(now),
			CutoffAt:     cutoff.NextMonthPrefCutoff(now).Format(time.RFC3339),
		})
	}
}

// -------------------------------------------------
// PUT /api/students/me/meal-preference
// Gelecek ayın tercihini günceller; ayın son günü 18:00 sonrası reddedilir
// -------------------------------------------------
func UpdatePreferenceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		var body UpdatePreferenceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		now := time.Now()
		if !cutoff.NextMonthPrefAllowed(now) {
			return fiber.NewError(fiber.StatusForbidden,
				"Gelecek ay tercihi artık değiştirilemez. Son saat: ayın son günü 18:00.")
		}

		nextMonth := MonthString(NextMonthOf(now))

		// Audit için önceki hali sakla
		before, berr := GetOrCreate(database.DB, student, nextMonth)
		if berr != nil {
			fmt.Printf("Önceki tercih okunamadı, audit öncesi hali boş kalacak: %v\n", berr)
		}

		pref, err := Update(database.DB, student, nextMonth, body.PrefersBeef, body.PrefersFish)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tercih güncellenemedi")
		}

		userIDVal := c.Locals(auth.CtxUserIDKey)
		if userID, ok := userIDVal.(uint); ok {
			var beforeData any
			if before != nil {
				beforeData = map[string]any{
					"prefers_beef": before.PrefersBeef,
					"prefers_fish": before.PrefersFish,
				}
			}
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    student.Name,
				EntityType:  "meal_preference",
				EntityID:    pref.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("%s ayı tercihi güncellendi", nextMonth),
				Before:      beforeData,
				After: map[string]any{
					"prefers_beef": pref.PrefersBeef,
					"prefers_fish": pref.PrefersFish,
				},
			}); logErr != nil {
				fmt.Printf("Audit log yazılamadı: %v\n", logErr)
			}
		}

		return c.JSON(PreferenceResponse{
			Month:       pref.Month,
			PrefersBeef: pref.PrefersBeef,
			PrefersFish: pref.PrefersFish,
		})
	}
}
