package admin

import (
	"fmt"
	"strings"

	"yemekhane-backend/internal/audit"
	"yemekhane-backend/internal/auth"
	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateStudentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	RoomNumber         string `json:"room_number"`
	DefaultMealOn      *bool  `json:"default_meal_on"`
	DefaultPrefersBeef *bool  `json:"default_prefers_beef"`
	DefaultPrefersFish *bool  `json:"default_prefers_fish"`
}

type UpdateStudentRequest struct {
	Name               *string `json:"name"`
	RoomNumber         *string `json:"room_number"`
	DefaultMealOn      *bool   `json:"default_meal_on"`
	DefaultPrefersBeef *bool   `json:"default_prefers_beef"`
	DefaultPrefersFish *bool   `json:"default_prefers_fish"`
}

type CreateStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type StudentResponse struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	RoomNumber         string `json:"room_number"`
	DefaultMealOn      bool   `json:"default_meal_on"`
	DefaultPrefersBeef bool   `json:"default_prefers_beef"`
	DefaultPrefersFish bool   `json:"default_prefers_fish"`
}

func toStudentResponse(s *models.Student, email string) StudentResponse {
	return StudentResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Email:              email,
		RoomNumber:         s.RoomNumber,
		DefaultMealOn:      s.DefaultMealOn,
		DefaultPrefersBeef: s.DefaultPrefersBeef,
		DefaultPrefersFish: s.DefaultPrefersFish,
	}
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

// -------------------------------------------------
// POST /api/admin/students
// Kullanıcı hesabı + öğrenci profili tek transaction'da açılır
// -------------------------------------------------
func CreateStudentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStudentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Email == "" || body.Password == "" || body.RoomNumber == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email, şifre ve oda numarası zorunlu")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.RoleStudent,
		}
		student := models.Student{
			Name:               body.Name,
			RoomNumber:         body.RoomNumber,
			DefaultMealOn:      boolOr(body.DefaultMealOn, true),
			DefaultPrefersBeef: boolOr(body.DefaultPrefersBeef, true),
			DefaultPrefersFish: boolOr(body.DefaultPrefersFish, true),
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			student.UserID = user.ID
			return tx.Create(&student).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öğrenci oluşturulamadı (email kayıtlı olabilir)")
		}

		userIDVal := c.Locals(auth.CtxUserIDKey)
		if adminID, ok := userIDVal.(uint); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      adminID,
				EntityType:  "student",
				EntityID:    student.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Öğrenci kaydedildi: %s (Oda %s)", student.Name, student.RoomNumber),
				After:       toStudentResponse(&student, user.Email),
			}); logErr != nil {
				fmt.Printf("Audit log yazılamadı: %v\n", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toStudentResponse(&student, user.Email))
	}
}

// -------------------------------------------------
// GET /api/admin/students
// -------------------------------------------------
func ListStudentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var students []models.Student
		if err := database.DB.Preload("User").
			Order("room_number asc").
			Find(&students).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öğrenciler listelenemedi")
		}

		resp := make([]StudentResponse, 0, len(students))
		for i := range students {
			resp = append(resp, toStudentResponse(&students[i], students[i].User.Email))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// PUT /api/admin/students/:id
// Oda numarası ve hesap seviyesi varsayılanlar güncellenebilir
// -------------------------------------------------
func UpdateStudentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id geçersiz")
		}

		var student models.Student
		if err := database.DB.Preload("User").First(&student, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Öğrenci bulunamadı")
		}

		var body UpdateStudentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		before := toStudentResponse(&student, student.User.Email)

		if body.Name != nil && *body.Name != "" {
			student.Name = *body.Name
		}
		if body.RoomNumber != nil && *body.RoomNumber != "" {
			student.RoomNumber = *body.RoomNumber
		}
		if body.DefaultMealOn != nil {
			student.DefaultMealOn = *body.DefaultMealOn
		}
		if body.DefaultPrefersBeef != nil {
			student.DefaultPrefersBeef = *body.DefaultPrefersBeef
		}
		if body.DefaultPrefersFish != nil {
			student.DefaultPrefersFish = *body.DefaultPrefersFish
		}

		if err := database.DB.Save(&student).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öğrenci güncellenemedi")
		}

		userIDVal := c.Locals(auth.CtxUserIDKey)
		if adminID, ok := userIDVal.(uint); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      adminID,
				EntityType:  "student",
				EntityID:    student.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Öğrenci güncellendi: %s", student.Name),
				Before:      before,
				After:       toStudentResponse(&student, student.User.Email),
			}); logErr != nil {
				fmt.Printf("Audit log yazılamadı: %v\n", logErr)
			}
		}

		return c.JSON(toStudentResponse(&student, student.User.Email))
	}
}

// -------------------------------------------------
// POST /api/admin/staff
// Yemekhane sorumlusu (manager) hesabı açar
// -------------------------------------------------
func CreateStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStaffRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.RoleManager,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hesap oluşturulamadı (email kayıtlı olabilir)")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		})
	}
}
