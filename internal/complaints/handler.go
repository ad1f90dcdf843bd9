package complaints

import (
	"yemekhane-backend/internal/auth"
	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateComplaintRequest struct {
	Name        string `json:"name"`
	RoomNumber  string `json:"room_number"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
}

type ComplaintResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	RoomNumber  string `json:"room_number"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func toResponse(cm *models.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          cm.ID,
		Name:        cm.Name,
		RoomNumber:  cm.RoomNumber,
		PhoneNumber: cm.PhoneNumber,
		Description: cm.Description,
		CreatedAt:   cm.CreatedAt.Format("2006-01-02 15:04"),
	}
}

// -------------------------------------------------
// POST /api/students/me/complaints
// -------------------------------------------------
func CreateComplaintHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		var body CreateComplaintRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name == "" || body.RoomNumber == "" || body.PhoneNumber == "" || body.Description == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Tüm alanlar zorunlu")
		}

		cm := models.Complaint{
			StudentID:   student.ID,
			Name:        body.Name,
			RoomNumber:  body.RoomNumber,
			PhoneNumber: body.PhoneNumber,
			Description: body.Description,
		}

		if err := database.DB.Create(&cm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şikayet kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&cm))
	}
}

// -------------------------------------------------
// GET /api/students/me/complaints
// -------------------------------------------------
func ListMyComplaintsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := auth.CurrentStudent(c)
		if err != nil {
			return err
		}

		var complaints []models.Complaint
		if err := database.DB.Where("student_id = ?", student.ID).
			Order("created_at desc").
			Find(&complaints).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şikayetler listelenemedi")
		}

		resp := make([]ComplaintResponse, 0, len(complaints))
		for i := range complaints {
			resp = append(resp, toResponse(&complaints[i]))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/admin/complaints
// -------------------------------------------------
func ListAllComplaintsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var complaints []models.Complaint
		if err := database.DB.Order("created_at desc").Find(&complaints).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şikayetler listelenemedi")
		}

		resp := make([]ComplaintResponse, 0, len(complaints))
		for i := range complaints {
			resp = append(resp, toResponse(&complaints[i]))
		}
		return c.JSON(resp)
	}
}
