package menu

import (
	"errors"

	"yemekhane-backend/internal/models"

	"gorm.io/gorm"
)

// ForWeekday: haftanın günü için menü kaydı. Kayıt yoksa (nil, nil) döner;
// menüsüz gün hata değil, maliyet hesabında 0.00 demektir.
func ForWeekday(db *gorm.DB, dayOfWeek string) (*models.WeeklyMenu, error) {
	var m models.WeeklyMenu
	err := db.Where("day_of_week = ?", dayOfWeek).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FullWeek: mevcut menüler Pazartesi'den Pazar'a sıralı
func FullWeek(db *gorm.DB) ([]models.WeeklyMenu, error) {
	var menus []models.WeeklyMenu
	if err := db.Find(&menus).Error; err != nil {
		return nil, err
	}

	order := make(map[string]int, len(models.Weekdays))
	for i, d := range models.Weekdays {
		order[d] = i
	}

	// Günlerin takvim sırası DB sırasından bağımsız
	for i := 0; i < len(menus); i++ {
		for j := i + 1; j < len(menus); j++ {
			if order[menus[j].DayOfWeek] < order[menus[i].DayOfWeek] {
				menus[i], menus[j] = menus[j], menus[i]
			}
		}
	}

	return menus, nil
}
