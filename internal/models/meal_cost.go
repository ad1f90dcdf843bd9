package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyMealCost: gün bazlı hesaplanan maliyetin cache'i.
// Kaynak veriden (menü + katılım + tercih) her zaman birebir yeniden
// hesaplanabilir; aylık özet hesabı sırasında tazelenir.
type DailyMealCost struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"uniqueIndex:idx_meal_cost_student_date;not null"`
	Student   Student
	Date      time.Time `gorm:"uniqueIndex:idx_meal_cost_student_date;type:date;not null"`

	TotalCost decimal.Decimal `gorm:"type:decimal(6,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthlyMealSummary: (student, month) başına aylık özet.
// Sadece tam yeniden hesaplama ile güncellenir (upsert), asla artırımlı değil.
type MonthlyMealSummary struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"uniqueIndex:idx_summary_student_month;not null"`
	Student   Student
	Month     string `gorm:"size:7;uniqueIndex:idx_summary_student_month;not null"`

	TotalCost   decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	TotalOnDays int             `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
