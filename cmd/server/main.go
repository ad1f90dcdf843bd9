package main

import (
	"log"
	"strings"
	"time"

	"yemekhane-backend/internal/admin"
	"yemekhane-backend/internal/attendance"
	"yemekhane-backend/internal/audit"
	"yemekhane-backend/internal/auth"
	"yemekhane-backend/internal/complaints"
	"yemekhane-backend/internal/config"
	"yemekhane-backend/internal/dashboard"
	"yemekhane-backend/internal/database"
	"yemekhane-backend/internal/mealcost"
	"yemekhane-backend/internal/mealpref"
	"yemekhane-backend/internal/menu"
	"yemekhane-backend/internal/models"
	"yemekhane-backend/internal/tokens"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Haftalık menü (tüm roller okuyabilir)
	protected.Get("/menu", menu.ListWeeklyMenuHandler())
	protected.Get("/menu/today", menu.TodayMenuHandler())

	// Öğrenci route'ları
	studentRoutes := protected.Group("/students/me")
	studentRoutes.Use(auth.RequireRole(models.RoleStudent))

	// Öğün katılımı
	studentRoutes.Get("/meal-status", attendance.MyStatusHandler())
	studentRoutes.Post("/meal-status/toggle/:slot", attendance.ToggleSlotHandler())
	studentRoutes.Put("/meal-status/bulk", attendance.BulkUpdateHandler())

	// Yemek tercihi
	studentRoutes.Get("/meal-preference", mealpref.MyPreferencesHandler())
	studentRoutes.Put("/meal-preference", mealpref.UpdatePreferenceHandler())

	// Maliyet ve özet
	studentRoutes.Get("/daily-cost", mealcost.MyDailyCostHandler())
	studentRoutes.Get("/meal-history", mealcost.MyMealHistoryHandler())
	studentRoutes.Get("/monthly-summary", mealcost.MyMonthlySummaryHandler())

	// Şikayet ve değerlendirme
	studentRoutes.Post("/complaints", complaints.CreateComplaintHandler())
	studentRoutes.Get("/complaints", complaints.ListMyComplaintsHandler())
	studentRoutes.Post("/menu-reviews", menu.SubmitReviewHandler())
	studentRoutes.Get("/menu-reviews", menu.ListMyReviewsHandler())

	// Sorumlu (manager) route'ları
	managerRoutes := protected.Group("/manager")
	managerRoutes.Use(auth.RequireRole(models.RoleManager, models.RoleAdmin))

	managerRoutes.Post("/menu-proposals", menu.ProposeWeekHandler())
	managerRoutes.Get("/menu-proposals", menu.ListMyProposalsHandler())
	managerRoutes.Get("/meal-tokens", tokens.ListMealTokensHandler())
	managerRoutes.Get("/monthly-summaries", mealcost.ListMonthlySummariesHandler())

	// Admin route'ları
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Hesap yönetimi
	adminRoutes.Post("/students", admin.CreateStudentHandler())
	adminRoutes.Get("/students", admin.ListStudentsHandler())
	adminRoutes.Put("/students/:id", admin.UpdateStudentHandler())
	adminRoutes.Post("/staff", admin.CreateStaffHandler())

	// Menü onayı
	adminRoutes.Get("/menu-proposals", menu.ListPendingProposalsHandler())
	adminRoutes.Post("/menu-proposals/:id/approve", menu.ApproveProposalHandler())
	adminRoutes.Post("/menu-proposals/:id/reject", menu.RejectProposalHandler())

	// Aylık özetler
	adminRoutes.Post("/monthly-summaries/recompute", mealcost.RecomputeAllHandler())
	adminRoutes.Post("/students/:id/monthly-summary/recompute", mealcost.RecomputeStudentHandler())

	// Analitik ve denetim
	adminRoutes.Get("/dashboard/cost-chart", dashboard.CostChartHandler())
	adminRoutes.Get("/complaints", complaints.ListAllComplaintsHandler())
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	// Ay kapanışı: her ayın 1'i 02:00'da önceki ayın özetleri hesaplanır
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.SummaryCronSpec, func() {
		now := time.Now()
		prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
		log.Printf("Aylık özet kapanışı başlıyor: %d-%02d", prev.Year(), int(prev.Month()))
		mealcost.RecomputeAllSummaries(database.DB, prev.Year(), prev.Month())
	}); err != nil {
		log.Fatalf("Cron tanımlanamadı: %v", err)
	}
	scheduler.Start()

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
