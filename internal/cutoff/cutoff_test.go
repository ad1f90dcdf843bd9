package cutoff

import (
	"testing"
	"time"
)

func TestTomorrowEditAllowed(t *testing.T) {
	loc := time.Local

	before := time.Date(2025, 4, 10, 19, 59, 59, 0, loc)
	if !TomorrowEditAllowed(before) {
		t.Errorf("19:59:59'da değişiklik serbest olmalı")
	}

	exact := time.Date(2025, 4, 10, 20, 0, 0, 0, loc)
	if TomorrowEditAllowed(exact) {
		t.Errorf("tam 20:00:00'da değişiklik kapalı olmalı")
	}

	after := time.Date(2025, 4, 10, 22, 30, 0, 0, loc)
	if TomorrowEditAllowed(after) {
		t.Errorf("20:00 sonrasında değişiklik kapalı olmalı")
	}
}

func TestCanEditDate(t *testing.T) {
	loc := time.Local
	now := time.Date(2025, 4, 10, 12, 0, 0, 0, loc)

	yesterday := time.Date(2025, 4, 9, 0, 0, 0, 0, loc)
	if CanEditDate(now, yesterday) {
		t.Errorf("geçmiş gün düzenlenemez")
	}

	today := time.Date(2025, 4, 10, 0, 0, 0, 0, loc)
	if CanEditDate(now, today) {
		t.Errorf("bugün düzenlenemez")
	}

	tomorrow := time.Date(2025, 4, 11, 0, 0, 0, 0, loc)
	if !CanEditDate(now, tomorrow) {
		t.Errorf("yarın 20:00'dan önce düzenlenebilir olmalı")
	}

	lateNow := time.Date(2025, 4, 10, 20, 0, 0, 0, loc)
	if CanEditDate(lateNow, tomorrow) {
		t.Errorf("20:00 sonrası yarın düzenlenemez")
	}

	// Yarından sonraki günler saat sınırına tabi değil
	dayAfter := time.Date(2025, 4, 12, 0, 0, 0, 0, loc)
	if !CanEditDate(lateNow, dayAfter) {
		t.Errorf("yarından sonraki günler 20:00 sonrasında da düzenlenebilir olmalı")
	}
}

func TestNextMonthPrefCutoff(t *testing.T) {
	loc := time.Local

	now := time.Date(2025, 4, 15, 10, 0, 0, 0, loc)
	cut := NextMonthPrefCutoff(now)
	want := time.Date(2025, 4, 30, 18, 0, 0, 0, loc)
	if !cut.Equal(want) {
		t.Errorf("Nisan için cutoff %v olmalı, %v bulundu", want, cut)
	}

	// Aralık → yıl sonu
	dec := time.Date(2025, 12, 2, 10, 0, 0, 0, loc)
	cut = NextMonthPrefCutoff(dec)
	want = time.Date(2025, 12, 31, 18, 0, 0, 0, loc)
	if !cut.Equal(want) {
		t.Errorf("Aralık için cutoff %v olmalı, %v bulundu", want, cut)
	}
}

func TestNextMonthPrefAllowed(t *testing.T) {
	loc := time.Local

	before := time.Date(2025, 4, 30, 17, 59, 59, 0, loc)
	if !NextMonthPrefAllowed(before) {
		t.Errorf("son gün 17:59:59'da tercih değişikliği serbest olmalı")
	}

	exact := time.Date(2025, 4, 30, 18, 0, 0, 0, loc)
	if NextMonthPrefAllowed(exact) {
		t.Errorf("son gün tam 18:00'da tercih değişikliği kapalı olmalı")
	}
}
