package mealcost

import (
	"errors"
	"fmt"
	"log"
	"time"

	"yemekhane-backend/internal/mealpref"
	"yemekhane-backend/internal/menu"
	"yemekhane-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyCost: tek bir günün maliyeti. Salt okunur: katılım kaydı yoksa veya
// o haftanın günü için menü yoksa 0.00 döner, hiçbir kayıt oluşturmaz.
// Tercih çözümü de salt okunur varyantla yapılır.
func DailyCost(db *gorm.DB, student *models.Student, date time.Time) (decimal.Decimal, error) {
	var status models.DailyMealStatus
	err := db.Where("student_id = ? AND date = ?", student.ID, date.Format(dateKeyLayout)).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero.Round(2), nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	m, err := menu.ForWeekday(db, date.Weekday().String())
	if err != nil {
		return decimal.Zero, err
	}

	beef, fish, err := mealpref.Resolve(db, student, mealpref.MonthString(date))
	if err != nil {
		return decimal.Zero, err
	}

	return ComputeDailyCost(m, &status, beef, fish), nil
}

func loadMonthInputs(db *gorm.DB, studentID uint, first, last time.Time) (map[string]*models.DailyMealStatus, map[string]*models.WeeklyMenu, error) {
	var statusRows []models.DailyMealStatus
	err := db.Where("student_id = ? AND date >= ? AND date <= ?", studentID, first, last).
		Find(&statusRows).Error
	if err != nil {
		return nil, nil, err
	}

	statuses := make(map[string]*models.DailyMealStatus, len(statusRows))
	for i := range statusRows {
		statuses[statusRows[i].Date.Format(dateKeyLayout)] = &statusRows[i]
	}

	var menuRows []models.WeeklyMenu
	if err := db.Find(&menuRows).Error; err != nil {
		return nil, nil, err
	}

	menus := make(map[string]*models.WeeklyMenu, len(menuRows))
	for i := range menuRows {
		menus[menuRows[i].DayOfWeek] = &menuRows[i]
	}

	return statuses, menus, nil
}

// RecomputeMonthlySummary: (student, month) özetini sıfırdan hesaplar ve
// upsert eder. Asla artırımlı değildir; girdiler değişmediyse ikinci çalışma
// birebir aynı kaydı üretir. Günlük maliyet cache'i de aynı transaction
// içinde tazelenir.
func RecomputeMonthlySummary(db *gorm.DB, student *models.Student, year int, month time.Month) (*models.MonthlyMealSummary, error) {
	loc := time.Local
	dates := MonthDates(year, month, loc)
	first := dates[0]
	last := dates[len(dates)-1]
	monthStr := first.Format(mealpref.MonthLayout)

	statuses, menus, err := loadMonthInputs(db, student.ID, first, last)
	if err != nil {
		return nil, err
	}

	beef, fish, err := mealpref.Resolve(db, student, monthStr)
	if err != nil {
		return nil, err
	}

	totalCost, totalOnDays := AggregateMonth(dates, statuses, menus, beef, fish)

	summary := models.MonthlyMealSummary{
		StudentID:   student.ID,
		Month:       monthStr,
		TotalCost:   totalCost,
		TotalOnDays: totalOnDays,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Günlük maliyet cache'i: kaydı olan günler için tazele
		for _, d := range dates {
			st := statuses[d.Format(dateKeyLayout)]
			if st == nil {
				continue
			}
			cost := ComputeDailyCost(menus[d.Weekday().String()], st, beef, fish)
			dailyCost := models.DailyMealCost{
				StudentID: student.ID,
				Date:      d,
				TotalCost: cost,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{"total_cost", "updated_at"}),
			}).Create(&dailyCost).Error; err != nil {
				return fmt.Errorf("günlük maliyet cache yazılamadı: %w", err)
			}
		}

		// Özet upsert: aynı (student, month) için yarışan hesaplamalarda
		// unique constraint tek kayıt garantiler
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_cost", "total_on_days", "updated_at"}),
		}).Create(&summary).Error; err != nil {
			return fmt.Errorf("aylık özet yazılamadı: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// RecomputeAllSummaries: ay kapanışı. Her öğrenci kendi transaction'ında
// hesaplanır; bir öğrencinin hatası loglanır ve diğerlerini durdurmaz.
func RecomputeAllSummaries(db *gorm.DB, year int, month time.Month) (ok, failed int) {
	var students []models.Student
	if err := db.Find(&students).Error; err != nil {
		log.Printf("Öğrenciler listelenemedi: %v", err)
		return 0, 0
	}

	for i := range students {
		if _, err := RecomputeMonthlySummary(db, &students[i], year, month); err != nil {
			log.Printf("Aylık özet hesaplanamadı (öğrenci %d, %d-%02d): %v",
				students[i].ID, year, int(month), err)
			failed++
			continue
		}
		ok++
	}

	log.Printf("Aylık özet kapanışı tamamlandı: %d-%02d, %d başarılı, %d hatalı",
		year, int(month), ok, failed)
	return ok, failed
}
