package mealpref

import (
	"testing"
	"time"

	"yemekhane-backend/internal/models"
)

func TestPrevMonthString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-07", "2025-06"},
		{"2025-01", "2024-12"}, // yıl devri
		{"2025-12", "2025-11"},
		{"2024-03", "2024-02"},
	}

	for _, c := range cases {
		got, err := PrevMonthString(c.in)
		if err != nil {
			t.Fatalf("PrevMonthString(%q) hata verdi: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("PrevMonthString(%q) = %q, beklenen %q", c.in, got, c.want)
		}
	}
}

func TestPrevMonthStringInvalid(t *testing.T) {
	if _, err := PrevMonthString("2025/07"); err == nil {
		t.Errorf("geçersiz format için hata bekleniyordu")
	}
}

func TestNextMonthOf(t *testing.T) {
	loc := time.Local

	now := time.Date(2025, 4, 15, 13, 45, 0, 0, loc)
	next := NextMonthOf(now)
	if MonthString(next) != "2025-05" {
		t.Errorf("Nisan'ın gelecek ayı 2025-05 olmalı, %s bulundu", MonthString(next))
	}

	dec := time.Date(2025, 12, 31, 23, 0, 0, 0, loc)
	next = NextMonthOf(dec)
	if MonthString(next) != "2026-01" {
		t.Errorf("Aralık'ın gelecek ayı 2026-01 olmalı, %s bulundu", MonthString(next))
	}
}

func TestPickFlagsChain(t *testing.T) {
	student := &models.Student{DefaultPrefersBeef: true, DefaultPrefersFish: false}
	current := &models.StudentMealPreference{PrefersBeef: true, PrefersFish: true}
	prev := &models.StudentMealPreference{PrefersBeef: false, PrefersFish: true}

	// Ayın kendi kaydı varsa önceki ay ve varsayılanlar devre dışı
	beef, fish := pickFlags(current, prev, student)
	if !beef || !fish {
		t.Errorf("ayın kaydı kazanmalı: (true, true) bekleniyordu, (%v, %v) bulundu", beef, fish)
	}

	// Ayın kaydı yoksa önceki ayın kaydı devralınır
	beef, fish = pickFlags(nil, prev, student)
	if beef || !fish {
		t.Errorf("önceki ay devralınmalı: (false, true) bekleniyordu, (%v, %v) bulundu", beef, fish)
	}

	// İkisi de yoksa hesap varsayılanları
	beef, fish = pickFlags(nil, nil, student)
	if !beef || fish {
		t.Errorf("hesap varsayılanları bekleniyordu: (true, false), (%v, %v) bulundu", beef, fish)
	}
}

func TestPickFlagsYearRollover(t *testing.T) {
	// Ocak ayının kaydı yok; bir önceki Aralık kaydı yıl devri üzerinden bulunmalı
	prefs := map[string]*models.StudentMealPreference{
		"2025-12": {Month: "2025-12", PrefersBeef: false, PrefersFish: true},
	}
	student := &models.Student{DefaultPrefersBeef: true, DefaultPrefersFish: true}

	monthStr := "2026-01"
	prevMonth, err := PrevMonthString(monthStr)
	if err != nil {
		t.Fatalf("PrevMonthString(%q) hata verdi: %v", monthStr, err)
	}

	beef, fish := pickFlags(prefs[monthStr], prefs[prevMonth], student)
	if beef || !fish {
		t.Errorf("Aralık kaydı devralınmalıydı: (false, true) bekleniyordu, (%v, %v) bulundu", beef, fish)
	}
}
