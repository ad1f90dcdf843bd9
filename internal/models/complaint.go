package models

import "time"

// Complaint: öğrencinin yemekhane şikayet kutusu kaydı
type Complaint struct {
	ID          uint `gorm:"primaryKey"`
	StudentID   uint `gorm:"index;not null"`
	Student     Student
	Name        string `gorm:"size:40;not null"`
	RoomNumber  string `gorm:"size:5;not null"`
	PhoneNumber string `gorm:"size:16;not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   time.Time
}
