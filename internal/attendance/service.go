package attendance

import (
	"errors"
	"fmt"
	"time"

	"yemekhane-backend/internal/cutoff"
	"yemekhane-backend/internal/models"

	"gorm.io/gorm"
)

// Yeni kayıt varsayılanları tek yerde:
//   - bugün ilk erişimde: üç öğün de kapalı
//   - yarın ilk erişimde: bugünün O ANKİ değerleri kopyalanır

// newDayFlags: ilk kez oluşturulan kaydın öğün değerleri.
// Kaynak gün yoksa üç öğün kapalı başlar; varsa o anki değerleri
// aynen devralınır (sabit bir default değil).
func newDayFlags(source *models.DailyMealStatus) (breakfast, lunch, dinner bool) {
	if source == nil {
		return false, false, false
	}
	return source.BreakfastOn, source.LunchOn, source.DinnerOn
}

func getStatus(db *gorm.DB, studentID uint, date time.Time) (*models.DailyMealStatus, error) {
	var st models.DailyMealStatus
	err := db.Where("student_id = ? AND date = ?", studentID, cutoff.DateOf(date)).First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func createStatus(db *gorm.DB, studentID uint, date time.Time, breakfast, lunch, dinner bool) (*models.DailyMealStatus, error) {
	st := models.DailyMealStatus{
		StudentID:   studentID,
		Date:        cutoff.DateOf(date),
		BreakfastOn: breakfast,
		LunchOn:     lunch,
		DinnerOn:    dinner,
	}
	if err := db.Create(&st).Error; err != nil {
		// Yarış: aynı (student, date) için ilk insert kazanır, biz onu okuruz
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return getStatus(db, studentID, date)
		}
		return nil, fmt.Errorf("öğün durumu oluşturulamadı: %w", err)
	}
	return &st, nil
}

// MaterializeToday: bugünün kaydını getirir, yoksa üç öğün kapalı oluşturur.
// Bugün hiçbir zaman sessizce "açık" başlatılmaz.
func MaterializeToday(db *gorm.DB, studentID uint, now time.Time) (*models.DailyMealStatus, error) {
	st, err := getStatus(db, studentID, now)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	b, l, d := newDayFlags(nil)
	return createStatus(db, studentID, now, b, l, d)
}

// MaterializeTomorrow: yarının kaydını getirir, yoksa bugünün o anki
// değerlerini kopyalayarak oluşturur (sabit bir default değil).
func MaterializeTomorrow(db *gorm.DB, studentID uint, now time.Time) (*models.DailyMealStatus, error) {
	tomorrow := cutoff.Tomorrow(now)

	st, err := getStatus(db, studentID, tomorrow)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	today, err := MaterializeToday(db, studentID, now)
	if err != nil {
		return nil, err
	}

	b, l, d := newDayFlags(today)
	return createStatus(db, studentID, tomorrow, b, l, d)
}

// ToggleSlot: yarının tek bir öğününü tersine çevirir; diğer iki öğüne
// dokunmaz. Bugün 20:00'dan sonra cutoff.ErrCutoffPassed döner ve kayıt
// değişmeden kalır.
func ToggleSlot(db *gorm.DB, studentID uint, slot models.MealSlot, now time.Time) (*models.DailyMealStatus, error) {
	if !models.ValidSlot(slot) {
		return nil, fmt.Errorf("geçersiz öğün: %s", slot)
	}

	if !cutoff.TomorrowEditAllowed(now) {
		return nil, cutoff.ErrCutoffPassed
	}

	st, err := MaterializeTomorrow(db, studentID, now)
	if err != nil {
		return nil, err
	}

	switch slot {
	case models.SlotBreakfast:
		st.BreakfastOn = !st.BreakfastOn
	case models.SlotLunch:
		st.LunchOn = !st.LunchOn
	case models.SlotDinner:
		st.DinnerOn = !st.DinnerOn
	}

	if err := db.Save(st).Error; err != nil {
		return nil, fmt.Errorf("öğün durumu kaydedilemedi: %w", err)
	}
	return st, nil
}

// DayChange: toplu güncellemede bir günün istenen hali
type DayChange struct {
	Date        time.Time
	BreakfastOn bool
	LunchOn     bool
	DinnerOn    bool
}

// BulkUpdate: yarın ve sonrası için günleri topluca günceller.
// Geçmiş/bugün ve (20:00 sonrasında) yarın atlanır; uygulanamayan günler
// sayılarak geri bildirilir. Kayıt yoksa önce kapalı varsayılanla oluşturulur.
func BulkUpdate(db *gorm.DB, studentID uint, changes []DayChange, now time.Time) (applied, skipped int, err error) {
	for _, ch := range changes {
		if !cutoff.CanEditDate(now, ch.Date) {
			skipped++
			continue
		}

		st, gerr := getStatus(db, studentID, ch.Date)
		if errors.Is(gerr, gorm.ErrRecordNotFound) {
			b, l, d := newDayFlags(nil)
			st, gerr = createStatus(db, studentID, ch.Date, b, l, d)
		}
		if gerr != nil {
			return applied, skipped, gerr
		}

		st.BreakfastOn = ch.BreakfastOn
		st.LunchOn = ch.LunchOn
		st.DinnerOn = ch.DinnerOn
		if serr := db.Save(st).Error; serr != nil {
			return applied, skipped, fmt.Errorf("öğün durumu kaydedilemedi: %w", serr)
		}
		applied++
	}
	return applied, skipped, nil
}

// MonthStatuses: ayın mevcut kayıtlarını tarih sıralı döner. Salt okunur;
// eksik günler için kayıt OLUŞTURMAZ (okuma yolu cutoff'a takılmaz).
func MonthStatuses(db *gorm.DB, studentID uint, year int, month time.Month) ([]models.DailyMealStatus, error) {
	loc := time.Local
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	var statuses []models.DailyMealStatus
	err := db.Where("student_id = ? AND date >= ? AND date <= ?", studentID, first, last).
		Order("date asc").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
