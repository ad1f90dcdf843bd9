package models

import "time"

// WeeklyMenuReview: öğrencinin gün + öğün bazlı menü değerlendirmesi.
// Aynı (student, day, slot) için tekrar gönderim mevcut kaydı günceller.
type WeeklyMenuReview struct {
	ID        uint   `gorm:"primaryKey"`
	StudentID uint   `gorm:"uniqueIndex:idx_review_student_day_slot;not null"`
	Student   Student
	DayOfWeek string   `gorm:"size:10;uniqueIndex:idx_review_student_day_slot;not null"`
	MealType  MealSlot `gorm:"size:10;uniqueIndex:idx_review_student_day_slot;not null"`

	Rating  int    `gorm:"not null"` // 1-5
	Comment string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
