package mealcost

import (
	"fmt"
	"time"

	"yemekhane-backend/internal/audit"
	"yemekhane-backend/internal/auth"
	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/mealpref"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DailyCostResponse struct {
	Date      string `json:"date"`
	TotalCost string `json:"total_cost"`
}

type HistoryDay struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	BreakfastOn bool   `json:"breakfast_on"`
	LunchOn     bool   `json:"lunch_on"`
	DinnerOn    bool   `json:"dinner_on"`
	OnCount     int    `json:"on_count"`
	DailyCost   string `json:"daily_cost"`
}

type HistoryResponse struct {
	Month       string       `json:"month"`
	PrefersBeef bool         `json:"prefers_beef"`
	PrefersFish bool         `json:"prefers_fish"`
	Days        []HistoryDay `json:"days"`
	TotalCost   string       `json:"total_cost"`
}

type SummaryResponse struct {
	StudentID   uint   `json:"student_id"`
	Month       string `json:"month"`
	TotalCost   string `json:"total_cost"`
	TotalOnDays int    `json:"total_on_days"`
}

type RecomputeRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func toSummaryResponse(s *models.MonthlyMealSummary) SummaryResponse {
	return SummaryResponse{
		StudentID:   s.StudentID,
		Month:       s.Month,
		TotalCost:   s.TotalCost.StringFixed(2),
		TotalOnDays: s.TotalOnDays,
	}
}

// ?month=YYYY-MM parametresi; boşsa now'un ayı
func parseMonthQuery(c *fiber.Ctx, now time.Time) (int, time.Month, error) {
	monthStr := c.Query("month")
	if monthStr == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse(mealpref.MonthLayout, monthStr)
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "month formatı geçersiz, 'YYYY-MM' olmalı")
	}
	return t.Year(), t.Month(), nil
}

// -------------------------------------------------
// GET /api/students/me/daily-cost?date=2025-04-12
// Tarih boşsa bugün. Eksik menü/kayıt için 0.00 döner, hata değil.
// -------------------------------------------------
func MyDailyCostHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		now := time.Now()
		date := now
		if dStr := c.Query("date"); dStr != "" {
			d, perr := time.ParseInLocation("2006-01-02", dStr, now.Location())
			if perr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date formatı geçersiz, 'YYYY-MM-DD' olmalı")
			}
			date = d
		}

		cost, err := DailyCost(database.DB, student, date)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Günlük maliyet hesaplanamadı")
		}

		return c.JSON(DailyCostResponse{
			Date:      date.Format("2006-01-02"),
			TotalCost: cost.StringFixed(2),
		})
	}
}

// -------------------------------------------------
// GET /api/students/me/meal-history?month=YYYY-MM
// Ayın kayıtlı günleri, gün bazlı maliyetle
// -------------------------------------------------
func MyMealHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		now := time.Now()
		year, month, err := parseMonthQuery(c, now)
		if err != nil {
			return err
		}

		loc := now.Location()
		dates := MonthDates(year, month, loc)
		monthStr := dates[0].Format(mealpref.MonthLayout)

		statuses, menus, err := loadMonthInputs(database.DB, student.ID, dates[0], dates[len(dates)-1])
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ay kayıtları alınamadı")
		}

		beef, fish, err := mealpref.Resolve(database.DB, student, monthStr)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tercih çözümlenemedi")
		}

		resp := HistoryResponse{
			Month:       monthStr,
			PrefersBeef: beef,
			PrefersFish: fish,
		}

		totalCost, _ := AggregateMonth(dates, statuses, menus, beef, fish)
		resp.TotalCost = totalCost.StringFixed(2)

		for _, d := range dates {
			st := statuses[d.Format(dateKeyLayout)]
			if st == nil {
				continue
			}
			cost := ComputeDailyCost(menus[d.Weekday().String()], st, beef, fish)
			resp.Days = append(resp.Days, HistoryDay{
				Date:        d.Format("2006-01-02"),
				Weekday:     d.Weekday().String(),
				BreakfastOn: st.BreakfastOn,
				LunchOn:     st.LunchOn,
				DinnerOn:    st.DinnerOn,
				OnCount:     st.OnCount(),
				DailyCost:   cost.StringFixed(2),
			})
		}

		return c.JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/students/me/monthly-summary?month=YYYY-MM
// Ay verilmezse en son özet kaydı döner
// -------------------------------------------------
func MyMonthlySummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		dbq := database.DB.Where("student_id = ?", student.ID)
		if monthStr := c.Query("month"); monthStr != "" {
			if _, perr := time.Parse(mealpref.MonthLayout, monthStr); perr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "month formatı geçersiz, 'YYYY-MM' olmalı")
			}
			dbq = dbq.Where("month = ?", monthStr)
		}

		var summary models.MonthlyMealSummary
		if err := dbq.Order("month desc").First(&summary).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Aylık özet bulunamadı")
		}

		return c.JSON(toSummaryResponse(&summary))
	}
}

// -------------------------------------------------
// GET /api/manager/monthly-summaries?month=YYYY-MM
// Ayın tüm özetleri + mutfak planlaması için tercih sayıları
// -------------------------------------------------
func ListMonthlySummariesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		monthStr := c.Query("month")
		if monthStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "month zorunlu")
		}
		if _, err := time.Parse(mealpref.MonthLayout, monthStr); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "month formatı geçersiz, 'YYYY-MM' olmalı")
		}

		var summaries []models.MonthlyMealSummary
		if err := database.DB.Preload("Student").
			Where("month = ?", monthStr).
			Joins("JOIN students ON students.id = monthly_meal_summaries.student_id").
			Order("students.room_number asc").
			Find(&summaries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özetler listelenemedi")
		}

		var prefs []models.StudentMealPreference
		if err := database.DB.Where("month = ?", monthStr).Find(&prefs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tercihler listelenemedi")
		}
		prefByStudent := make(map[uint]*models.StudentMealPreference, len(prefs))
		for i := range prefs {
			prefByStudent[prefs[i].StudentID] = &prefs[i]
		}

		type row struct {
			SummaryResponse
			StudentName string `json:"student_name"`
			RoomNumber  string `json:"room_number"`
			PrefersBeef bool   `json:"prefers_beef"`
			PrefersFish bool   `json:"prefers_fish"`
		}

		rows := make([]row, 0, len(summaries))
		beefCount, noBeefCount, fishCount, noFishCount := 0, 0, 0, 0

		for i := range summaries {
			s := &summaries[i]
			beef := s.Student.DefaultPrefersBeef
			fish := s.Student.DefaultPrefersFish
			if p := prefByStudent[s.StudentID]; p != nil {
				beef = p.PrefersBeef
				fish = p.PrefersFish
			}
			if beef {
				beefCount++
			} else {
				noBeefCount++
			}
			if fish {
				fishCount++
			} else {
				noFishCount++
			}
			rows = append(rows, row{
				SummaryResponse: toSummaryResponse(s),
				StudentName:     s.Student.Name,
				RoomNumber:      s.Student.RoomNumber,
				PrefersBeef:     beef,
				PrefersFish:     fish,
			})
		}

		return c.JSON(fiber.Map{
			"month":         monthStr,
			"summaries":     rows,
			"beef_count":    beefCount,
			"no_beef_count": noBeefCount,
			"fish_count":    fishCount,
			"no_fish_count": noFishCount,
		})
	}
}

// -------------------------------------------------
// POST /api/admin/monthly-summaries/recompute
// Tüm öğrenciler için ayı yeniden hesaplar; hatalı öğrenci atlanır
// -------------------------------------------------
func RecomputeAllHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecomputeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Year < 2000 || body.Month < 1 || body.Month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "year/month geçersiz")
		}

		ok, failed := RecomputeAllSummaries(database.DB, body.Year, time.Month(body.Month))

		userIDVal := c.Locals(auth.CtxUserIDKey)
		if userID, okk := userIDVal.(uint); okk {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				EntityType:  "monthly_summary",
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("%d-%02d özetleri yeniden hesaplandı: %d başarılı, %d hatalı", body.Year, body.Month, ok, failed),
			}); logErr != nil {
				fmt.Printf("Audit log yazılamadı: %v\n", logErr)
			}
		}

		return c.JSON(fiber.Map{
			"year":   body.Year,
			"month":  body.Month,
			"ok":     ok,
			"failed": failed,
		})
	}
}

// -------------------------------------------------
// POST /api/admin/students/:id/monthly-summary/recompute
// Tek öğrenci için yeniden hesaplama
// -------------------------------------------------
func RecomputeStudentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id geçersiz")
		}

		var body RecomputeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Year < 2000 || body.Month < 1 || body.Month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "year/month geçersiz")
		}

		var student models.Student
		if err := database.DB.First(&student, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Öğrenci bulunamadı")
		}

		summary, err := RecomputeMonthlySummary(database.DB, &student, body.Year, time.Month(body.Month))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}

		return c.JSON(toSummaryResponse(summary))
	}
}
