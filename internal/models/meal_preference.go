package models

import "time"

// StudentMealPreference: öğrencinin ay bazlı yemek tercihi.
// Month formatı "YYYY-MM"; (student_id, month) unique.
// Kayıt silinmez, sonraki ayın kaydı oluşturularak devam edilir.
type StudentMealPreference struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"uniqueIndex:idx_pref_student_month;not null"`
	Student   Student
	Month     string `gorm:"size:7;uniqueIndex:idx_pref_student_month;not null"`

	PrefersBeef bool `gorm:"not null;default:true"`
	PrefersFish bool `gorm:"not null;default:true"`

	CreatedAt time.Time
}
