package menu

import (
	"fmt"

	"yemekhane-backend/internal/audit"
	"yemekhane-backend/internal/auth"
	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProposalDayRequest struct {
	DayOfWeek string `json:"day_of_week"`

	BreakfastMain string `json:"breakfast_main"`
	BreakfastCost string `json:"breakfast_cost"`

	LunchMain          string `json:"lunch_main"`
	LunchCost          string `json:"lunch_cost"`
	LunchContainsBeef  bool   `json:"lunch_contains_beef"`
	LunchContainsFish  bool   `json:"lunch_contains_fish"`
	LunchAlternate     string `json:"lunch_alternate"`
	LunchCostAlternate string `json:"lunch_cost_alternate"`

	DinnerMain          string `json:"dinner_main"`
	DinnerCost          string `json:"dinner_cost"`
	DinnerContainsBeef  bool   `json:"dinner_contains_beef"`
	DinnerContainsFish  bool   `json:"dinner_contains_fish"`
	DinnerAlternate     string `json:"dinner_alternate"`
	DinnerCostAlternate string `json:"dinner_cost_alternate"`
}

type ProposeWeekRequest struct {
	Days []ProposalDayRequest `json:"days"`
}

type ProposalResponse struct {
	ID        uint                  `json:"id"`
	DayOfWeek string                `json:"day_of_week"`
	Status    models.ProposalStatus `json:"status"`
	CreatedAt string                `json:"created_at"`
}

func parseCost(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("maliyet negatif olamaz")
	}
	return d.Round(2), nil
}

func proposalFromRequest(d ProposalDayRequest, createdBy uint) (*models.WeeklyMenuProposal, error) {
	if !models.ValidWeekday(d.DayOfWeek) {
		return nil, fmt.Errorf("geçersiz gün: %s", d.DayOfWeek)
	}

	p := models.WeeklyMenuProposal{
		DayOfWeek:          d.DayOfWeek,
		BreakfastMain:      d.BreakfastMain,
		LunchMain:          d.LunchMain,
		LunchContainsBeef:  d.LunchContainsBeef,
		LunchContainsFish:  d.LunchContainsFish,
		LunchAlternate:     d.LunchAlternate,
		DinnerMain:         d.DinnerMain,
		DinnerContainsBeef: d.DinnerContainsBeef,
		DinnerContainsFish: d.DinnerContainsFish,
		DinnerAlternate:    d.DinnerAlternate,
		CreatedByID:        createdBy,
		Status:             models.ProposalPending,
	}

	var err error
	if p.BreakfastCost, err = parseCost(d.BreakfastCost); err != nil {
		return nil, fmt.Errorf("%s kahvaltı maliyeti geçersiz: %w", d.DayOfWeek, err)
	}
	if p.LunchCost, err = parseCost(d.LunchCost); err != nil {
		return nil, fmt.Errorf("%s öğle maliyeti geçersiz: %w", d.DayOfWeek, err)
	}
	if p.LunchCostAlternate, err = parseCost(d.LunchCostAlternate); err != nil {
		return nil, fmt.Errorf("%s öğle alternatif maliyeti geçersiz: %w", d.DayOfWeek, err)
	}
	if p.DinnerCost, err = parseCost(d.DinnerCost); err != nil {
		return nil, fmt.Errorf("%s akşam maliyeti geçersiz: %w", d.DayOfWeek, err)
	}
	if p.DinnerCostAlternate, err = parseCost(d.DinnerCostAlternate); err != nil {
		return nil, fmt.Errorf("%s akşam alternatif maliyeti geçersiz: %w", d.DayOfWeek, err)
	}

	return &p, nil
}

// -------------------------------------------------
// POST /api/manager/menu-proposals
// 7 güne kadar menü önerisi; aynı haftanın eski pending önerileri silinir
// -------------------------------------------------
func ProposeWeekHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(auth.CtxUserIDKey)
		userID, ok := userIDVal.(uint)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
		}

		var body ProposeWeekRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if len(body.Days) == 0 || len(body.Days) > 7 {
			return fiber.NewError(fiber.StatusBadRequest, "1 ile 7 arası gün gönderilmeli")
		}

		proposals := make([]*models.WeeklyMenuProposal, 0, len(body.Days))
		for _, d := range body.Days {
			p, err := proposalFromRequest(d, userID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			proposals = append(proposals, p)
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			// Eski pending önerileri temizle
			if err := tx.Where("created_by_id = ? AND status = ?", userID, models.ProposalPending).
				Delete(&models.WeeklyMenuProposal{}).Error; err != nil {
				return err
			}
			for _, p := range proposals {
				if err := tx.Create(p).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öneri kaydedilemedi")
		}

		resp := make([]ProposalResponse, 0, len(proposals))
		for _, p := range proposals {
			resp = append(resp, ProposalResponse{
				ID:        p.ID,
				DayOfWeek: p.DayOfWeek,
				Status:    p.Status,
				CreatedAt: p.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/manager/menu-proposals  (kendi önerileri)
// GET /api/admin/menu-proposals    (bekleyen öneriler)
// -------------------------------------------------
func ListMyProposalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(auth.CtxUserIDKey)
		userID, ok := userIDVal.(uint)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
		}

		var proposals []models.WeeklyMenuProposal
		if err := database.DB.Where("created_by_id = ?", userID).
			Order("created_at desc, day_of_week asc").
			Find(&proposals).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öneriler listelenemedi")
		}
		return c.JSON(proposals)
	}
}

func ListPendingProposalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var proposals []models.WeeklyMenuProposal
		if err := database.DB.Where("status = ?", models.ProposalPending).
			Order("created_at desc, day_of_week asc").
			Find(&proposals).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öneriler listelenemedi")
		}
		return c.JSON(proposals)
	}
}

// -------------------------------------------------
// POST /api/admin/menu-proposals/:id/approve
// Öneriyi onaylar ve gün bazlı upsert ile WeeklyMenu'ye kopyalar
// -------------------------------------------------
func ApproveProposalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id geçersiz")
		}

		var proposal models.WeeklyMenuProposal
		if err := database.DB.First(&proposal, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Öneri bulunamadı")
		}
		if proposal.Status != models.ProposalPending {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece bekleyen öneriler onaylanabilir")
		}

		wm := models.WeeklyMenu{
			DayOfWeek:           proposal.DayOfWeek,
			BreakfastMain:       proposal.BreakfastMain,
			BreakfastCost:       proposal.BreakfastCost,
			LunchMain:           proposal.LunchMain,
			LunchCost:           proposal.LunchCost,
			LunchContainsBeef:   proposal.LunchContainsBeef,
			LunchContainsFish:   proposal.LunchContainsFish,
			LunchAlternate:      proposal.LunchAlternate,
			LunchCostAlternate:  proposal.LunchCostAlternate,
			DinnerMain:          proposal.DinnerMain,
			DinnerCost:          proposal.DinnerCost,
			DinnerContainsBeef:  proposal.DinnerContainsBeef,
			DinnerContainsFish:  proposal.DinnerContainsFish,
			DinnerAlternate:     proposal.DinnerAlternate,
			DinnerCostAlternate: proposal.DinnerCostAlternate,
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "day_of_week"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"breakfast_main", "breakfast_cost",
					"lunch_main", "lunch_cost", "lunch_contains_beef", "lunch_contains_fish",
					"lunch_alternate", "lunch_cost_alternate",
					"dinner_main", "dinner_cost", "dinner_contains_beef", "dinner_contains_fish",
					"dinner_alternate", "dinner_cost_alternate",
					"updated_at",
				}),
			}).Create(&wm).Error; err != nil {
				return err
			}

			proposal.Status = models.ProposalApproved
			proposal.LinkedMenuID = &wm.ID
			return tx.Save(&proposal).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öneri onaylanamadı")
		}

		userIDVal := c.Locals(auth.CtxUserIDKey)
		if userID, ok := userIDVal.(uint); ok {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				EntityType:  "weekly_menu",
				EntityID:    wm.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("%s menüsü onaylanan öneriden güncellendi", proposal.DayOfWeek),
			}); logErr != nil {
				fmt.Printf("Audit log yazılamadı: %v\n", logErr)
			}
		}

		return c.JSON(fiber.Map{
			"proposal_id": proposal.ID,
			"menu_id":     wm.ID,
			"status":      proposal.Status,
		})
	}
}

// -------------------------------------------------
// POST /api/admin/menu-proposals/:id/reject
// -------------------------------------------------
func RejectProposalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id geçersiz")
		}

		var proposal models.WeeklyMenuProposal
		if err := database.DB.First(&proposal, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Öneri bulunamadı")
		}
		if proposal.Status != models.ProposalPending {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece bekleyen öneriler reddedilebilir")
		}

		proposal.Status = models.ProposalRejected
		if err := database.DB.Save(&proposal).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öneri reddedilemedi")
		}

		return c.JSON(fiber.Map{
			"proposal_id": proposal.ID,
			"status":      proposal.Status,
		})
	}
}
