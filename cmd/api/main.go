package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go-phone-store/internal/handler"
	"go-phone-store/internal/middleware"
	"go-phone-store/internal/model"
	"go-phone-store/internal/repository"
	"go-phone-store/internal/service"
	"go-phone-store/internal/ws"
	"go-phone-store/pkg/cache"
	"go-phone-store/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Phone{}, &model.Accessory{},
		&model.Sale{}, &model.SaleItem{},
		&model.PhoneType{}, &model.AccessoryCategory{},
		&model.Setting{},
		&model.User{}, &model.Privilege{}, &model.Role{},
	)

	seedDefaults(db)

	redisClient := cache.Connect()

	wsHub := ws.NewHub()
	go wsHub.Run()

	// Wiring
	phoneRepo := repository.NewPhoneRepo(db)
	accessoryRepo := repository.NewAccessoryRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	settingRepo := repository.NewSettingRepo(db)
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	allocAttempts := service.DefaultAllocAttempts
	if raw := os.Getenv("ALLOC_MAX_ATTEMPTS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			allocAttempts = parsed
		}
	}

	phoneService := service.NewPhoneService(phoneRepo, wsHub, allocAttempts)
	accessoryService := service.NewAccessoryService(accessoryRepo, wsHub)
	saleService := service.NewSaleService(saleRepo, phoneRepo, accessoryRepo, settingRepo, wsHub, allocAttempts)
	catalogService := service.NewCatalogService(catalogRepo, phoneRepo, accessoryRepo)
	dashService := service.NewDashboardService(phoneRepo, accessoryRepo, saleRepo, redisClient)
	authService := service.NewAuthService(userRepo, wsHub)
	userService := service.NewUserService(userRepo, privilegeRepo, roleRepo)
	exportService := service.NewExportService(phoneRepo, accessoryRepo, saleRepo, catalogRepo, settingRepo)

	phoneHandler := handler.NewPhoneHandler(phoneService)
	accessoryHandler := handler.NewAccessoryHandler(accessoryService)
	saleHandler := handler.NewSaleHandler(saleService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo, privilegeRepo)
	exportHandler := handler.NewExportHandler(exportService)

	app := fiber.New(fiber.Config{
		AppName: "Phone Store POS v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// Everything below requires a valid session
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Get("/dashboard/overview", dashHandler.Overview)
	protected.Get("/dashboard/revenue", middleware.RequirePrivilege("report:view"), dashHandler.Revenue)

	protected.Get("/phones", middleware.RequirePrivilege("phone:view"), phoneHandler.GetAll)
	protected.Get("/phones/statistics", middleware.RequirePrivilege("report:view"), phoneHandler.Statistics)
	protected.Get("/phones/:id", middleware.RequirePrivilege("phone:view"), phoneHandler.GetByID)
	protected.Post("/phones", middleware.RequirePrivilege("phone:create"), phoneHandler.Create)
	protected.Put("/phones/:id", middleware.RequirePrivilege("phone:update"), phoneHandler.Update)
	protected.Delete("/phones/:id", middleware.RequirePrivilege("phone:delete"), phoneHandler.Delete)

	protected.Get("/accessories", middleware.RequirePrivilege("accessory:view"), accessoryHandler.GetAll)
	protected.Get("/accessories/low-stock", middleware.RequirePrivilege("accessory:view"), accessoryHandler.LowStock)
	protected.Get("/accessories/statistics", middleware.RequirePrivilege("report:view"), accessoryHandler.Statistics)
	protected.Get("/accessories/:id", middleware.RequirePrivilege("accessory:view"), accessoryHandler.GetByID)
	protected.Post("/accessories", middleware.RequirePrivilege("accessory:create"), accessoryHandler.Create)
	protected.Put("/accessories/:id", middleware.RequirePrivilege("accessory:update"), accessoryHandler.Update)
	protected.Patch("/accessories/:id/stock", middleware.RequirePrivilege("accessory:restock"), accessoryHandler.AdjustStock)
	protected.Delete("/accessories/:id", middleware.RequirePrivilege("accessory:delete"), accessoryHandler.Delete)

	protected.Get("/sales", middleware.RequirePrivilege("sale:view"), saleHandler.GetAll)
	protected.Get("/sales/statistics", middleware.RequirePrivilege("report:view"), saleHandler.Statistics)
	protected.Get("/sales/:id", middleware.RequirePrivilege("sale:view"), saleHandler.GetByID)
	protected.Get("/sales/:id/receipt", middleware.RequirePrivilege("sale:view"), saleHandler.Receipt)
	protected.Post("/sales", middleware.RequirePrivilege("sale:create"), saleHandler.Create)
	protected.Put("/sales/:id", middleware.RequirePrivilege("sale:update"), saleHandler.Update)
	protected.Post("/sales/:id/cancel", middleware.RequirePrivilege("sale:cancel"), saleHandler.Cancel)
	protected.Delete("/sales/:id", middleware.RequirePrivilege("sale:delete"), saleHandler.Delete)

	protected.Get("/catalog/phone-types", catalogHandler.GetPhoneTypes)
	protected.Post("/catalog/phone-types", middleware.RequirePrivilege("catalog:manage"), catalogHandler.AddPhoneType)
	protected.Delete("/catalog/phone-types", middleware.RequirePrivilege("catalog:manage"), catalogHandler.DeletePhoneType)
	protected.Get("/catalog/categories", catalogHandler.GetCategories)
	protected.Post("/catalog/categories", middleware.RequirePrivilege("catalog:manage"), catalogHandler.AddCategory)
	protected.Delete("/catalog/categories/:name", middleware.RequirePrivilege("catalog:manage"), catalogHandler.DeleteCategory)

	protected.Get("/users", userHandler.GetAll)
	protected.Get("/users/:id", userHandler.GetByID)
	protected.Post("/users", middleware.RequirePrivilege("user:create"), userHandler.Create)
	protected.Put("/users/:id", middleware.RequirePrivilege("user:update"), userHandler.Update)
	protected.Delete("/users/:id", middleware.RequirePrivilege("user:delete"), userHandler.Delete)
	protected.Put("/users/:id/privileges", middleware.RequirePrivilege("user:update_privilege"), userHandler.UpdatePrivileges)

	protected.Get("/roles", roleHandler.GetRoles)
	protected.Get("/privileges", roleHandler.GetPrivileges)

	protected.Get("/export", middleware.RequirePrivilege("data:export"), exportHandler.Export)
	protected.Post("/import", middleware.RequirePrivilege("data:import"), exportHandler.Import)

	// WebSocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}

	log.Println("Server exited")
}

// seedDefaults creates privileges, roles, the bootstrap owner account,
// the brand/model catalog, accessory categories, and store settings.
func seedDefaults(db *gorm.DB) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	settingRepo := repository.NewSettingRepo(db)

	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	allPrivileges, _ := privilegeRepo.FindAll()

	// OWNER gets everything.
	ownerRole, err := roleRepo.FindByCode(model.RoleOwner)
	if err == nil && len(ownerRole.Privileges) == 0 {
		db.Model(&ownerRole).Association("Privileges").Replace(allPrivileges)
		log.Println("OWNER role assigned all privileges")
	}

	// CASHIER works the counter: no user management, no data transfer,
	// no catalog edits, no hard deletes.
	cashierRole, err := roleRepo.FindByCode(model.RoleCashier)
	if err == nil && len(cashierRole.Privileges) == 0 {
		excluded := map[string]bool{
			"user:create": true, "user:update": true, "user:delete": true, "user:update_privilege": true,
			"data:export": true, "data:import": true,
			"catalog:manage": true,
			"phone:delete":   true, "accessory:delete": true, "sale:delete": true,
		}
		var cashierPrivileges []model.Privilege
		for _, p := range allPrivileges {
			if !excluded[p.Code] {
				cashierPrivileges = append(cashierPrivileges, p)
			}
		}
		db.Model(&cashierRole).Association("Privileges").Replace(cashierPrivileges)
		log.Println("CASHIER role assigned counter privileges")
	}

	if _, err := userRepo.FindByEmail("owner@example.com"); err != nil {
		ownerRole, _ := roleRepo.FindByCode(model.RoleOwner)

		owner := &model.User{
			Email:      "owner@example.com",
			FullName:   "Store Owner",
			RoleID:     &ownerRole.ID,
			IsActive:   true,
			Privileges: ownerRole.Privileges,
		}
		owner.CreatedBy = "system"
		owner.UpdatedBy = "system"

		if err := owner.SetPassword("owner123"); err != nil {
			log.Printf("Warning: Failed to hash owner password: %v", err)
			return
		}
		if err := userRepo.Create(owner); err != nil {
			log.Printf("Warning: Failed to create owner user: %v", err)
		} else {
			log.Println("Owner user created: owner@example.com / owner123 (OWNER)")
		}
	}

	if err := catalogRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed catalog: %v", err)
	}
	if err := settingRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed settings: %v", err)
	}
}
