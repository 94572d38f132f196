package main

import (
	"log"
	"strings"

	"sayim-backend/internal/activity"
	"sayim-backend/internal/audit"
	"sayim-backend/internal/auth"
	"sayim-backend/internal/config"
	"sayim-backend/internal/inventory"
	"sayim-backend/internal/location"
	"sayim-backend/internal/models"
	"sayim-backend/internal/questionnaire"
	"sayim-backend/internal/report"
	"sayim-backend/internal/storage"
	"sayim-backend/internal/storage/badgerstore"
	"sayim-backend/internal/storage/gormstore"
	"sayim-backend/internal/storage/memstore"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "badger":
		return badgerstore.Open(cfg.BadgerPath)
	case "memory":
		return memstore.New(), nil
	default:
		return gormstore.Open(cfg.DatabaseDSN)
	}
}

func main() {
	cfg := config.Load()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal("Depolama açılamadı:", err)
	}
	defer store.Close()

	catalogSvc := inventory.NewService(store)
	auditSvc := audit.NewService(store, catalogSvc)
	locationSvc := location.NewService(store)
	questionnaireSvc := questionnaire.NewService(store)
	activitySvc := activity.NewService(store)
	reportSvc := report.NewService(catalogSvc, auditSvc)

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
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(store))
	api.Post("/auth/login", auth.LoginHandler(cfg, store))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(store))

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Kullanıcı yönetimi
	adminRoutes.Get("/users", auth.ListUsersHandler(store))
	adminRoutes.Post("/users", auth.CreateUserHandler(store))
	adminRoutes.Put("/users/:id", auth.UpdateUserHandler(store))
	adminRoutes.Delete("/users/:id", auth.DeleteUserHandler(store))

	// İçe aktarma ve sıfırlama
	adminRoutes.Post("/import/item-master", inventory.ImportItemMasterHandler(catalogSvc, activitySvc))
	adminRoutes.Post("/data/clear", inventory.ClearDataHandler(catalogSvc, activitySvc))

	// Lokasyon yönetimi
	adminRoutes.Post("/locations", location.CreateHandler(locationSvc, activitySvc))
	adminRoutes.Put("/locations/:id", location.UpdateHandler(locationSvc, activitySvc))
	adminRoutes.Delete("/locations/:id", location.DeleteHandler(locationSvc, activitySvc))

	// Soru seti yönetimi
	adminRoutes.Put("/questions", questionnaire.ReplaceQuestionsHandler(questionnaireSvc))

	// Kapanış stoğu: admin ve auditor yükleyebilir
	importRoutes := protected.Group("/import")
	importRoutes.Use(auth.RequireRole(models.RoleAdmin, models.RoleAuditor))
	importRoutes.Post("/closing-stock", inventory.ImportClosingStockHandler(catalogSvc, locationSvc, activitySvc))

	// Sayım akışı: admin ve auditor
	counting := protected.Group("")
	counting.Use(auth.RequireRole(models.RoleAdmin, models.RoleAuditor))
	counting.Post("/scan", audit.ScanHandler(auditSvc, activitySvc))
	counting.Post("/audit/count", audit.CountHandler(auditSvc, activitySvc))
	counting.Post("/questionnaire/answers", questionnaire.SubmitAnswerHandler(questionnaireSvc, activitySvc))

	// Okuma uçları (tüm roller)
	protected.Get("/items", inventory.ListItemsHandler(catalogSvc))
	protected.Get("/items/search", inventory.SearchItemsHandler(catalogSvc))
	protected.Get("/audit/items", audit.ListAuditedHandler(auditSvc))
	protected.Get("/audit/summary", audit.SummaryHandler(auditSvc))
	protected.Get("/audit/summary/by-location", audit.SummaryByLocationHandler(auditSvc))

	protected.Get("/locations", location.ListHandler(locationSvc))
	protected.Get("/locations/:id", location.GetHandler(locationSvc))

	protected.Get("/questionnaire/questions", questionnaire.ListQuestionsHandler(questionnaireSvc))
	protected.Get("/questionnaire/answers", questionnaire.ListAnswersHandler(questionnaireSvc))

	protected.Get("/activity", activity.RecentHandler(activitySvc))

	protected.Get("/reports/reconciliation", report.ReconciliationHandler(reportSvc))
	protected.Get("/reports/discrepancies", report.DiscrepancyHandler(reportSvc))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
