package attendance

import (
	"errors"
	"fmt"
	"time"

	"yemekhane-backend/internal/audit"
	"yemekhane-backend/internal/auth"
	"yemekhane-backend/internal/cutoff"
	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type StatusResponse struct {
	Date        string `json:"date"`
	BreakfastOn bool   `json:"breakfast_on"`
	LunchOn     bool   `json:"lunch_on"`
	DinnerOn    bool   `json:"dinner_on"`
}

type MyStatusResponse struct {
	Today         StatusResponse   `json:"today"`
	Tomorrow      StatusResponse   `json:"tomorrow"`
	CutoffPassed  bool             `json:"cutoff_passed"`
	CutoffAt      string           `json:"cutoff_at"`
	MonthStatuses []StatusResponse `json:"month_statuses"`
}

type BulkUpdateRequest struct {
	Days []BulkUpdateDay `json:"days"`
}

type BulkUpdateDay struct {
	Date        string `json:"date"` // "2025-04-12"
	BreakfastOn bool   `json:"breakfast_on"`
	LunchOn     bool   `json:"lunch_on"`
	DinnerOn    bool   `json:"dinner_on"`
}

func toStatusResponse(st *models.DailyMealStatus) StatusResponse {
	return StatusResponse{
		Date:        st.Date.Format("2006-01-02"),
		BreakfastOn: st.BreakfastOn,
		LunchOn:     st.LunchOn,
		DinnerOn:    st.DinnerOn,
	}
}

// -------------------------------------------------
// GET /api/students/me/meal-status
// Bugün + yarın (gerekirse oluşturulur) ve ayın kayıtları
// -------------------------------------------------
func MyStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		now := time.Now()

		today, err := MaterializeToday(database.DB, student.ID, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bugünün kaydı alınamadı")
		}

		tomorrow, err := MaterializeTomorrow(database.DB, student.ID, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yarının kaydı alınamadı")
		}

		statuses, err := MonthStatuses(database.DB, student.ID, now.Year(), now.Month())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ay kayıtları listelenemedi")
		}

		monthResp := make([]StatusResponse, 0, len(statuses))
		for i := range statuses {
			monthResp = append(monthResp, toStatusResponse(&statuses[i]))
		}

		return c.JSON(MyStatusResponse{
			Today:         toStatusResponse(today),
			Tomorrow:      toStatusResponse(tomorrow),
			CutoffPassed:  !cutoff.TomorrowEditAllowed(now),
			CutoffAt:      cutoff.TomorrowCutoff(now).Format(time.RFC3339),
			MonthStatuses: monthResp,
		})
	}
}

// -------------------------------------------------
// POST /api/students/me/meal-status/toggle/:slot
// Yarının tek öğününü aç/kapat; bugün 20:00 sonrası reddedilir
// -------------------------------------------------
func ToggleSlotHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		slot := models.MealSlot(c.Params("slot"))
		if !models.ValidSlot(slot) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz öğün (breakfast|lunch|dinner)")
		}

		now := time.Now()

		st, err := ToggleSlot(database.DB, student.ID, slot, now)
		if err != nil {
			if errors.Is(err, cutoff.ErrCutoffPassed) {
				return fiber.NewError(fiber.StatusForbidden,
					"Yarının öğün durumu artık değiştirilemez. Son saat: 20:00.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Öğün durumu güncellenemedi")
		}

		userIDVal := c.Locals(auth.CtxUserIDKey)
		if userID, ok := userIDVal.(uint); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    student.Name,
				EntityType:  "meal_status",
				EntityID:    st.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("%s için %s öğünü değiştirildi", st.Date.Format("2006-01-02"), slot),
				After:       toStatusResponse(st),
			}); logErr != nil {
				fmt.Printf("Audit log yazılamadı: %v\n", logErr)
			}
		}

		return c.JSON(toStatusResponse(st))
	}
}

// -------------------------------------------------
// PUT /api/students/me/meal-status/bulk
// Yarın ve sonrası için toplu güncelleme; kilitli günler atlanır
// -------------------------------------------------
func BulkUpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		var body BulkUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if len(body.Days) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "En az bir gün gönderilmeli")
		}

		now := time.Now()

		changes := make([]DayChange, 0, len(body.Days))
		for _, d := range body.Days {
			date, perr := time.ParseInLocation("2006-01-02", d.Date, now.Location())
			if perr != nil {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Tarih formatı geçersiz (%s), 'YYYY-MM-DD' olmalı", d.Date))
			}
			changes = append(changes, DayChange{
				Date:        date,
				BreakfastOn: d.BreakfastOn,
				LunchOn:     d.LunchOn,
				DinnerOn:    d.DinnerOn,
			})
		}

		applied, skipped, err := BulkUpdate(database.DB, student.ID, changes, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Toplu güncelleme yapılamadı")
		}

		userIDVal := c.Locals(auth.CtxUserIDKey)
		if userID, ok := userIDVal.(uint); ok && applied > 0 {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    student.Name,
				EntityType:  "meal_status",
				EntityID:    student.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Toplu öğün güncellemesi: %d gün uygulandı, %d gün kilitli", applied, skipped),
			}); logErr != nil {
				fmt.Printf("Audit log yazılamadı: %v\n", logErr)
			}
		}

		return c.JSON(fiber.Map{
			"applied": applied,
			"skipped": skipped,
		})
	}
}
