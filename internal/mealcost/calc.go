package mealcost

import (
	"time"

	"yemekhane-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Maliyet hesabının saf çekirdeği. Veritabanına dokunmaz; eksik menü veya
// eksik katılım kaydı hata değil, 0.00 demektir ("yapılandırılmamış gün için
// borç yok" politikası).

// UsesAlternate: öğün içeriği ile tercih çakışıyor mu.
// Dana kontrolü balıktan önce gelir; iki koşul da aynı alternatif fiyata
// çıktığı için ilk tutan kazanır.
func UsesAlternate(containsBeef, containsFish, prefersBeef, prefersFish bool) bool {
	if containsBeef && !prefersBeef {
		return true
	}
	if containsFish && !prefersFish {
		return true
	}
	return false
}

func slotCost(on, containsBeef, containsFish, prefersBeef, prefersFish bool, base, alt decimal.Decimal) decimal.Decimal {
	if !on {
		return decimal.Zero
	}
	if UsesAlternate(containsBeef, containsFish, prefersBeef, prefersFish) {
		return alt
	}
	return base
}

// ComputeDailyCost: bir günün toplam maliyeti.
// menu veya status nil ise 0.00. Kahvaltıda alternatif mantığı yok.
func ComputeDailyCost(menu *models.WeeklyMenu, status *models.DailyMealStatus, prefersBeef, prefersFish bool) decimal.Decimal {
	if menu == nil || status == nil {
		return decimal.Zero.Round(2)
	}

	cost := decimal.Zero

	if status.BreakfastOn {
		cost = cost.Add(menu.BreakfastCost)
	}

	cost = cost.Add(slotCost(
		status.LunchOn,
		menu.LunchContainsBeef,
		menu.LunchContainsFish,
		prefersBeef,
		prefersFish,
		menu.LunchCost,
		menu.LunchCostAlternate,
	))

	cost = cost.Add(slotCost(
		status.DinnerOn,
		menu.DinnerContainsBeef,
		menu.DinnerContainsFish,
		prefersBeef,
		prefersFish,
		menu.DinnerCost,
		menu.DinnerCostAlternate,
	))

	return cost.Round(2)
}

// MonthDates: ayın bütün takvim günleri (28-31 gün, artık yıl dahil)
func MonthDates(year int, month time.Month, loc *time.Location) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	var dates []time.Time
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

const dateKeyLayout = "2006-01-02"

// AggregateMonth: ayın toplam maliyeti ve "açık" gün sayısı.
// statuses anahtarı "YYYY-MM-DD", menus anahtarı haftanın günü adıdır.
// Kaydı olmayan gün ve kaydı olup üç öğünü de kapalı olan gün sayılmaz.
func AggregateMonth(dates []time.Time, statuses map[string]*models.DailyMealStatus, menus map[string]*models.WeeklyMenu, prefersBeef, prefersFish bool) (totalCost decimal.Decimal, totalOnDays int) {
	totalCost = decimal.Zero

	for _, d := range dates {
		st := statuses[d.Format(dateKeyLayout)]
		menu := menus[d.Weekday().String()]

		totalCost = totalCost.Add(ComputeDailyCost(menu, st, prefersBeef, prefersFish))

		if st != nil && st.AnyOn() {
			totalOnDays++
		}
	}

	return totalCost.Round(2), totalOnDays
}
