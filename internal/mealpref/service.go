package mealpref

import (
	"errors"
	"fmt"
	"time"

	"yemekhane-backend/internal/models"

	"gorm.io/gorm"
)

// Ay formatı: "YYYY-MM"
const MonthLayout = "2006-01"

func MonthString(t time.Time) string {
	return t.Format(MonthLayout)
}

// PrevMonthString: bir önceki ayın string'i ("2025-01" → "2024-12")
func PrevMonthString(monthStr string) (string, error) {
	t, err := time.Parse(MonthLayout, monthStr)
	if err != nil {
		return "", fmt.Errorf("ay formatı geçersiz (%q): %w", monthStr, err)
	}
	return t.AddDate(0, -1, 0).Format(MonthLayout), nil
}

// NextMonthOf: now'a göre gelecek ayın ilk günü
func NextMonthOf(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
}

// pickFlags: üç kademeli tercih seçimi. İlk dolu kaynak kazanır:
// ayın kaydı → önceki ayın kaydı → öğrencinin hesap varsayılanları.
// Resolve ve GetOrCreate aynı zinciri buradan kullanır.
func pickFlags(current, prev *models.StudentMealPreference, student *models.Student) (prefersBeef, prefersFish bool) {
	if current != nil {
		return current.PrefersBeef, current.PrefersFish
	}
	if prev != nil {
		return prev.PrefersBeef, prev.PrefersFish
	}
	return student.DefaultPrefersBeef, student.DefaultPrefersFish
}

// findPreference: (student, month) kaydı; yoksa (nil, nil)
func findPreference(db *gorm.DB, studentID uint, monthStr string) (*models.StudentMealPreference, error) {
	var pref models.StudentMealPreference
	err := db.Where("student_id = ? AND month = ?", studentID, monthStr).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Resolve: ay için geçerli tercihi SADECE OKUYARAK çözer.
// Hiçbir kayıt oluşturmaz; geçmiş aylar için maliyet hesabında kullanılır.
func Resolve(db *gorm.DB, student *models.Student, monthStr string) (prefersBeef, prefersFish bool, err error) {
	current, err := findPreference(db, student.ID, monthStr)
	if err != nil {
		return false, false, err
	}

	var prev *models.StudentMealPreference
	if current == nil {
		prevMonth, perr := PrevMonthString(monthStr)
		if perr != nil {
			return false, false, perr
		}
		if prev, err = findPreference(db, student.ID, prevMonth); err != nil {
			return false, false, err
		}
	}

	beef, fish := pickFlags(current, prev, student)
	return beef, fish, nil
}

// GetOrCreate: ay için tercihi kalıcılaştırır (materialize).
// Kayıt yoksa önceki aydan, o da yoksa hesap varsayılanlarından kopyalanarak
// OLUŞTURULUR; sonraki çağrılar 1. adımdan aynen okur. Aynı (student, month)
// için yarışan istekler unique constraint'e takılır ve kazananın kaydını okur.
func GetOrCreate(db *gorm.DB, student *models.Student, monthStr string) (*models.StudentMealPreference, error) {
	existing, err := findPreference(db, student.ID, monthStr)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	prevMonth, perr := PrevMonthString(monthStr)
	if perr != nil {
		return nil, perr
	}

	prev, err := findPreference(db, student.ID, prevMonth)
	if err != nil {
		return nil, err
	}

	beef, fish := pickFlags(nil, prev, student)

	pref := models.StudentMealPreference{
		StudentID:   student.ID,
		Month:       monthStr,
		PrefersBeef: beef,
		PrefersFish: fish,
	}

	if err := db.Create(&pref).Error; err != nil {
		// Yarış: başka bir istek aynı anda oluşturduysa onun kaydını al
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, ferr := findPreference(db, student.ID, monthStr)
			if ferr != nil {
				return nil, ferr
			}
			if winner == nil {
				return nil, err
			}
			return winner, nil
		}
		return nil, fmt.Errorf("tercih kaydı oluşturulamadı: %w", err)
	}

	return &pref, nil
}

// Update: ay için tercihi günceller, kayıt yoksa oluşturur.
// Cutoff kontrolü çağıranda (handler) yapılır; burada sadece yazma var.
func Update(db *gorm.DB, student *models.Student, monthStr string, prefersBeef, prefersFish bool) (*models.StudentMealPreference, error) {
	pref, err := GetOrCreate(db, student, monthStr)
	if err != nil {
		return nil, err
	}

	pref.PrefersBeef = prefersBeef
	pref.PrefersFish = prefersFish
	if err := db.Save(pref).Error; err != nil {
		return nil, fmt.Errorf("tercih güncellenemedi: %w", err)
	}
	return pref, nil
}
