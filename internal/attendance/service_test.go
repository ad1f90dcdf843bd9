package attendance

import (
	"testing"

	"yemekhane-backend/internal/models"
)

func TestNewDayFlagsNoSource(t *testing.T) {
	// Kaynak gün yoksa (bugün ilk kez oluşturuluyor) üç öğün kapalı
	b, l, d := newDayFlags(nil)
	if b || l || d {
		t.Errorf("kaynaksız yeni kayıt için üç öğün kapalı bekleniyordu, (%v, %v, %v) bulundu", b, l, d)
	}
}

func TestNewDayFlagsInheritsToday(t *testing.T) {
	// Yarın ilk kez oluşturulurken bugünün o anki değerleri aynen devralınır
	today := &models.DailyMealStatus{
		BreakfastOn: true,
		LunchOn:     false,
		DinnerOn:    true,
	}

	b, l, d := newDayFlags(today)
	if b != today.BreakfastOn || l != today.LunchOn || d != today.DinnerOn {
		t.Errorf("yarın bugünü kopyalamalı: (%v, %v, %v) bekleniyordu, (%v, %v, %v) bulundu",
			today.BreakfastOn, today.LunchOn, today.DinnerOn, b, l, d)
	}
}

func TestNewDayFlagsAllOffToday(t *testing.T) {
	// Bugün üç öğünü de kapatmışsa yarın da kapalı başlar;
	// "hepsi kapalı" ile "kayıt yok" aynı sonucu verir ama ayrı yollardır
	today := &models.DailyMealStatus{}

	b, l, d := newDayFlags(today)
	if b || l || d {
		t.Errorf("kapalı bugünden devralan yarın da kapalı olmalı, (%v, %v, %v) bulundu", b, l, d)
	}
}
