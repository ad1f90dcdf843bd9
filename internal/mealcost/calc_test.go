package mealcost

import (
	"testing"
	"time"

	"yemekhane-backend/internal/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func allOnStatus(date time.Time) *models.DailyMealStatus {
	return &models.DailyMealStatus{
		Date:        date,
		BreakfastOn: true,
		LunchOn:     true,
		DinnerOn:    true,
	}
}

func TestComputeDailyCostMissingMenu(t *testing.T) {
	// Menüsü olmayan gün, katılım ne olursa olsun 0.00
	st := allOnStatus(time.Date(2025, 4, 7, 0, 0, 0, 0, time.Local))
	cost := ComputeDailyCost(nil, st, true, true)
	if !cost.Equal(dec("0.00")) {
		t.Errorf("menüsüz gün için 0.00 bekleniyordu, %s bulundu", cost)
	}
}

func TestComputeDailyCostMissingStatus(t *testing.T) {
	m := &models.WeeklyMenu{DayOfWeek: "Monday", BreakfastCost: dec("30.00")}
	cost := ComputeDailyCost(m, nil, true, true)
	if !cost.Equal(dec("0.00")) {
		t.Errorf("kayıtsız gün için 0.00 bekleniyordu, %s bulundu", cost)
	}
}

func TestUsesAlternateBeefBeforeFish(t *testing.T) {
	// Öğün hem dana hem balık içeriyor; öğrenci sadece balığı sevmiyor —
	// dana kontrolü tutmaz, balık kontrolü alternatife düşürür
	if !UsesAlternate(true, true, true, false) {
		t.Errorf("balık sevmeyen için alternatif bekleniyordu")
	}

	// Sadece dana sevmiyor: ilk koşul tutar
	if !UsesAlternate(true, true, false, true) {
		t.Errorf("dana sevmeyen için alternatif bekleniyordu")
	}

	// İkisini de seviyor: ana yemek
	if UsesAlternate(true, true, true, true) {
		t.Errorf("iki tercihi de açık öğrenci için ana yemek bekleniyordu")
	}

	// İçerik yoksa tercih fark etmez
	if UsesAlternate(false, false, false, false) {
		t.Errorf("dana/balık içermeyen öğün için ana yemek bekleniyordu")
	}
}

func TestComputeDailyCostAlternateTieBreak(t *testing.T) {
	// Öğle: dana + balık, base 100, alternatif 60; öğrenci dana sevmiyor
	m := &models.WeeklyMenu{
		DayOfWeek:          "Monday",
		LunchCost:          dec("100"),
		LunchCostAlternate: dec("60"),
		LunchContainsBeef:  true,
		LunchContainsFish:  true,
	}
	st := &models.DailyMealStatus{LunchOn: true}

	cost := ComputeDailyCost(m, st, false, true)
	if !cost.Equal(dec("60.00")) {
		t.Errorf("alternatif maliyet 60.00 bekleniyordu, %s bulundu", cost)
	}

	// Balık sevmeyen de aynı alternatife düşer
	cost = ComputeDailyCost(m, st, true, false)
	if !cost.Equal(dec("60.00")) {
		t.Errorf("alternatif maliyet 60.00 bekleniyordu, %s bulundu", cost)
	}
}

func TestComputeDailyCostBreakfastNoAlternate(t *testing.T) {
	// Kahvaltıda dana/balık bayrağı yok; base her zaman uygulanır
	m := &models.WeeklyMenu{
		DayOfWeek:     "Monday",
		BreakfastCost: dec("25.50"),
	}
	st := &models.DailyMealStatus{BreakfastOn: true}

	cost := ComputeDailyCost(m, st, false, false)
	if !cost.Equal(dec("25.50")) {
		t.Errorf("kahvaltı maliyeti 25.50 bekleniyordu, %s bulundu", cost)
	}
}

func TestComputeDailyCostAllSlots(t *testing.T) {
	m := &models.WeeklyMenu{
		DayOfWeek:           "Tuesday",
		BreakfastCost:       dec("30"),
		LunchCost:           dec("80"),
		LunchCostAlternate:  dec("50"),
		LunchContainsBeef:   true,
		DinnerCost:          dec("70"),
		DinnerCostAlternate: dec("40"),
		DinnerContainsFish:  true,
	}
	st := &models.DailyMealStatus{BreakfastOn: true, LunchOn: true, DinnerOn: true}

	// Dana seviyor, balık sevmiyor: 30 + 80 + 40
	cost := ComputeDailyCost(m, st, true, false)
	if !cost.Equal(dec("150.00")) {
		t.Errorf("150.00 bekleniyordu, %s bulundu", cost)
	}

	// Öğle kapalıysa sadece o öğün düşer
	st.LunchOn = false
	cost = ComputeDailyCost(m, st, true, false)
	if !cost.Equal(dec("70.00")) {
		t.Errorf("70.00 bekleniyordu, %s bulundu", cost)
	}
}

func TestMonthDates(t *testing.T) {
	loc := time.Local

	if got := len(MonthDates(2025, time.April, loc)); got != 30 {
		t.Errorf("Nisan 2025 için 30 gün bekleniyordu, %d bulundu", got)
	}
	if got := len(MonthDates(2024, time.February, loc)); got != 29 {
		t.Errorf("Şubat 2024 (artık yıl) için 29 gün bekleniyordu, %d bulundu", got)
	}
	if got := len(MonthDates(2025, time.February, loc)); got != 28 {
		t.Errorf("Şubat 2025 için 28 gün bekleniyordu, %d bulundu", got)
	}
}

func TestAggregateMonthScenario(t *testing.T) {
	// Nisan 2025: ilk 20 gün üç öğün açık (150.00/gün), son 10 gün tamamen kapalı
	loc := time.Local
	dates := MonthDates(2025, time.April, loc)

	menus := make(map[string]*models.WeeklyMenu)
	for _, day := range models.Weekdays {
		menus[day] = &models.WeeklyMenu{
			DayOfWeek:     day,
			BreakfastCost: dec("30"),
			LunchCost:     dec("60"),
			DinnerCost:    dec("60"),
		}
	}

	statuses := make(map[string]*models.DailyMealStatus)
	for i, d := range dates {
		st := &models.DailyMealStatus{Date: d}
		if i < 20 {
			st.BreakfastOn = true
			st.LunchOn = true
			st.DinnerOn = true
		}
		statuses[d.Format("2006-01-02")] = st
	}

	totalCost, totalOnDays := AggregateMonth(dates, statuses, menus, true, true)

	if !totalCost.Equal(dec("3000.00")) {
		t.Errorf("toplam maliyet 3000.00 bekleniyordu, %s bulundu", totalCost)
	}
	if totalOnDays != 20 {
		t.Errorf("açık gün sayısı 20 bekleniyordu, %d bulundu", totalOnDays)
	}

	// Aynı girdiyle ikinci çalışma birebir aynı sonucu vermeli
	totalCost2, totalOnDays2 := AggregateMonth(dates, statuses, menus, true, true)
	if !totalCost.Equal(totalCost2) || totalOnDays != totalOnDays2 {
		t.Errorf("tekrar hesaplama aynı sonucu vermedi: %s/%d vs %s/%d",
			totalCost, totalOnDays, totalCost2, totalOnDays2)
	}
}

func TestAggregateMonthOffDayCounting(t *testing.T) {
	loc := time.Local
	dates := MonthDates(2025, time.April, loc)

	menus := map[string]*models.WeeklyMenu{}
	statuses := map[string]*models.DailyMealStatus{
		// Kaydı var ama üç öğün de kapalı: "açık" gün sayılmaz
		"2025-04-01": {},
		// Tek öğün bile açıksa gün sayılır
		"2025-04-02": {LunchOn: true},
	}

	_, totalOnDays := AggregateMonth(dates, statuses, menus, true, true)
	if totalOnDays != 1 {
		t.Errorf("açık gün sayısı 1 bekleniyordu, %d bulundu", totalOnDays)
	}
}
