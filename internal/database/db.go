package database

import (
	"log"

	"yemekhane-backend/internal/config"
	"yemekhane-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError: unique constraint ihlalini gorm.ErrDuplicatedKey olarak
	// almak için gerekli (get-or-create yarışlarında re-fetch yapıyoruz)
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.WeeklyMenu{},
		&models.WeeklyMenuProposal{},
		&models.StudentMealPreference{},
		&models.DailyMealStatus{},
		&models.DailyMealCost{},
		&models.MonthlyMealSummary{},
		&models.WeeklyMenuReview{},
		&models.Complaint{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
