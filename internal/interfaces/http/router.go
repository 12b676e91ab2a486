package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitormaquinas/os-master-api/internal/application/analytics"
	"github.com/vitormaquinas/os-master-api/internal/application/auth"
	"github.com/vitormaquinas/os-master-api/internal/application/backup"
	appsync "github.com/vitormaquinas/os-master-api/internal/application/sync"
	"github.com/vitormaquinas/os-master-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC     *usecase.OrderUseCase
	PrintUC     *usecase.PrintOrderUseCase
	SettingsUC  *usecase.SettingsUseCase
	AIUC        *usecase.AIUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	SyncUC      *appsync.SyncUseCase
	BackupUC    *backup.BackupUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión (protegido)
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	// Órdenes de servicio (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.PrintUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Get("/:id/print", orderHandler.Print)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Configuración de la empresa (protegido)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", settingsHandler.Save)

	// Sincronización (protegido)
	syncGroup := protected.Group("/sync")
	syncHandler := NewSyncHandler(deps.SyncUC)
	syncGroup.Post("/code", syncHandler.GenerateCode)
	syncGroup.Get("/code", syncHandler.CurrentCode)
	syncGroup.Post("/push", syncHandler.Push)
	syncGroup.Post("/pull", syncHandler.Pull)

	// Respaldos (protegido)
	backupGroup := protected.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup.Get("/export", backupHandler.Export)
	backupGroup.Post("/import", backupHandler.Import)

	// AI (protegido)
	aiHandler := NewAIHandler(deps.AIUC)
	protected.Post("/ai/optimize-description", aiHandler.OptimizeDescription)
}
