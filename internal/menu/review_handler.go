package menu

import (
	"yemekhane-backend/internal/auth"
	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

type ReviewRequest struct {
	DayOfWeek string          `json:"day_of_week"`
	MealType  models.MealSlot `json:"meal_type"`
	Rating    int             `json:"rating"`
	Comment   string          `json:"comment"`
}

// -------------------------------------------------
// POST /api/students/me/menu-reviews
// Aynı (gün, öğün) için tekrar gönderim mevcut kaydı günceller
// -------------------------------------------------
func SubmitReviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		var body ReviewRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if !models.ValidWeekday(body.DayOfWeek) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz gün")
		}
		if !models.ValidSlot(body.MealType) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz öğün (breakfast|lunch|dinner)")
		}
		if body.Rating < 1 || body.Rating > 5 {
			return fiber.NewError(fiber.StatusBadRequest, "Puan 1 ile 5 arasında olmalı")
		}

		review := models.WeeklyMenuReview{
			StudentID: student.ID,
			DayOfWeek: body.DayOfWeek,
			MealType:  body.MealType,
			Rating:    body.Rating,
			Comment:   body.Comment,
		}

		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "day_of_week"}, {Name: "meal_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
		}).Create(&review).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Değerlendirme kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(review)
	}
}

// -------------------------------------------------
// GET /api/students/me/menu-reviews
// -------------------------------------------------
func ListMyReviewsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		var reviews []models.WeeklyMenuReview
		if err := database.DB.Where("student_id = ?", student.ID).
			Order("day_of_week asc, meal_type asc").
			Find(&reviews).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Değerlendirmeler listelenemedi")
		}
		return c.JSON(reviews)
	}
}
