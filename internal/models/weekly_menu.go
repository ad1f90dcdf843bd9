package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MealSlot: bir gün içindeki öğün (breakfast / lunch / dinner)
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

func ValidSlot(s MealSlot) bool {
	return s == SlotBreakfast || s == SlotLunch || s == SlotDinner
}

// Haftanın günleri, Pazartesi başlangıçlı sıralama
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func ValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// WeeklyMenu: haftanın her günü için tek kayıt (day_of_week unique).
// Kahvaltıda alternatif yemek yok; öğle ve akşamda dana/balık içeriğine göre
// alternatif yemek ve alternatif fiyat var.
type WeeklyMenu struct {
	ID        uint   `gorm:"primaryKey"`
	DayOfWeek string `gorm:"size:10;uniqueIndex;not null"`

	BreakfastMain string          `gorm:"size:100"`
	BreakfastCost decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`

	LunchMain          string          `gorm:"size:100"`
	LunchCost          decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	LunchContainsBeef  bool            `gorm:"not null;default:false"`
	LunchContainsFish  bool            `gorm:"not null;default:false"`
	LunchAlternate     string          `gorm:"size:100"`
	LunchCostAlternate decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`

	DinnerMain          string          `gorm:"size:100"`
	DinnerCost          decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	DinnerContainsBeef  bool            `gorm:"not null;default:false"`
	DinnerContainsFish  bool            `gorm:"not null;default:false"`
	DinnerAlternate     string          `gorm:"size:100"`
	DinnerCostAlternate decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
