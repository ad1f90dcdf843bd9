package models

import "time"

// DailyMealStatus: öğrencinin bir gün için öğün katılım durumu.
// (student_id, date) unique; kayıt ilk erişimde oluşturulur (lazy).
type DailyMealStatus struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"uniqueIndex:idx_meal_status_student_date;not null"`
	Student   Student
	Date      time.Time `gorm:"uniqueIndex:idx_meal_status_student_date;type:date;not null"`

	BreakfastOn bool `gorm:"not null;default:false"`
	LunchOn     bool `gorm:"not null;default:false"`
	DinnerOn    bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AnyOn: günün en az bir öğünü açık mı (aylık "on" gün sayımında kullanılır)
func (s *DailyMealStatus) AnyOn() bool {
	return s.BreakfastOn || s.LunchOn || s.DinnerOn
}

// OnCount: açık öğün sayısı
func (s *DailyMealStatus) OnCount() int {
	n := 0
	if s.BreakfastOn {
		n++
	}
	if s.LunchOn {
		n++
	}
	if s.DinnerOn {
		n++
	}
	return n
}
