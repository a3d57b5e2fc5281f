package main

import (
	"fiber-lims/config"
	"fiber-lims/controllers/idgen"
	"fiber-lims/database"
	"fiber-lims/lims/master/department"
	"fiber-lims/logger"
	"fiber-lims/routes"
	"fiber-lims/services"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

func main() {

	config.LoadConfig()

	if err := logger.Init(config.LogLevel, config.LogFormat, config.LogFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	app := fiber.New()

	// Pastikan database ada
	database.EnsureDatabaseExists(config.DBName)

	// Connect to database
	mainDB, err := database.OpenMainDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate models
	if err := database.Migrate(mainDB); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(mainDB)
	department.SeedDepartments(mainDB)

	// Sweep stale sessions every 15 minutes
	c := cron.New()
	if _, err := c.AddFunc("*/15 * * * *", func() {
		services.SweepExpiredSessions(mainDB)
	}); err != nil {
		log.Fatalf("Failed to schedule session sweeper: %v", err)
	}
	c.Start()

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupAuthRoutes(app)
	routes.SetupDashboardRoutes(app)
	routes.SetupMenuRoutes(app)
	routes.SetupPermissionRoutes(app)
	routes.SetupRoleRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupOrderRoutes(app)
	routes.SetupSampleRoutes(app)
	routes.SetupInvoiceRoutes(app)
	routes.SetupDocumentRoutes(app)
	department.SetupDepartmentRoutes(app)

	port := config.APP_PORT
	logger.Get().Infof("Server listening on port %s", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
