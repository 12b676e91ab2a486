package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	appanalytics "github.com/vitormaquinas/os-master-api/internal/application/analytics"
	"github.com/vitormaquinas/os-master-api/internal/application/auth"
	"github.com/vitormaquinas/os-master-api/internal/application/backup"
	"github.com/vitormaquinas/os-master-api/internal/application/ports"
	appsync "github.com/vitormaquinas/os-master-api/internal/application/sync"
	"github.com/vitormaquinas/os-master-api/internal/application/usecase"
	infraai "github.com/vitormaquinas/os-master-api/internal/infrastructure/ai"
	infrapdf "github.com/vitormaquinas/os-master-api/internal/infrastructure/pdf"
	"github.com/vitormaquinas/os-master-api/internal/infrastructure/postgres"
	"github.com/vitormaquinas/os-master-api/internal/infrastructure/syncvault"
	httpRouter "github.com/vitormaquinas/os-master-api/internal/interfaces/http"
	"github.com/vitormaquinas/os-master-api/pkg/config"
	"github.com/vitormaquinas/os-master-api/pkg/credentials"
	"github.com/vitormaquinas/os-master-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Los montos viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}

	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)

	orderUC := usecase.NewOrderUseCase(orderRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(orderRepo)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(geminiSvc)

	pdfGenerator := infrapdf.NewMarotoPrintoutGenerator()
	printUC := usecase.NewPrintOrderUseCase(orderUC, settingsRepo, pdfGenerator)

	hasher := credentials.ForScheme(cfg.Auth.CredentialScheme)
	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	var vault ports.SyncVault
	switch cfg.Sync.Backend {
	case "redis":
		redisVault := syncvault.NewRedisVault(cfg.Sync.RedisAddr, cfg.Sync.RedisPassword, cfg.Sync.RedisDB)
		defer redisVault.Close()
		vault = redisVault
	default:
		vault = syncvault.NewHTTPVault(cfg.Sync.HTTPBaseURL)
	}
	syncUC := appsync.NewSyncUseCase(snapshotRepo, sessionRepo, vault)
	backupUC := backup.NewBackupUseCase(snapshotRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // respaldos con logo embebido
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "OS-Master API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:     orderUC,
		PrintUC:     printUC,
		SettingsUC:  settingsUC,
		AIUC:        aiUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		SyncUC:      syncUC,
		BackupUC:    backupUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
