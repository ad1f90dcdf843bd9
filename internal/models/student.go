package models

import "time"

// Student: yurtta kalan ve yemekhaneden yemek alan öğrenci.
// Default alanlar, ay/gün bazlı kayıt yoksa kullanılan hesap seviyesi varsayılanlardır.
type Student struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"uniqueIndex;not null"`
	User       User
	Name       string `gorm:"size:40;not null"`
	RoomNumber string `gorm:"size:5;not null"`

	DefaultMealOn      bool `gorm:"not null;default:true"`
	DefaultPrefersBeef bool `gorm:"not null;default:true"`
	DefaultPrefersFish bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
