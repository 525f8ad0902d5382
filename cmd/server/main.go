package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/red326/media-client-management/internal/config"
	"github.com/red326/media-client-management/internal/db"
	"github.com/red326/media-client-management/internal/handler"
	"github.com/red326/media-client-management/internal/middleware"
	"github.com/red326/media-client-management/internal/repository"
	"github.com/red326/media-client-management/internal/router"
	"github.com/red326/media-client-management/internal/service"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	middleware.InitLogger(cfg.LogLevel, "creatorpay-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	creatorRepo := repository.NewCreatorRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)

	creatorSvc := service.NewCreatorService(creatorRepo)
	videoSvc := service.NewVideoService(videoRepo, creatorRepo)
	reportSvc := service.NewReportService(creatorRepo, videoRepo, cache)
	dashboardSvc := service.NewDashboardService(creatorRepo, videoRepo, cache)

	h := &router.Handlers{
		Creator: handler.NewCreatorHandler(creatorSvc),
		Video:   handler.NewVideoHandler(videoSvc),
		Stats:   handler.NewStatsHandler(dashboardSvc, reportSvc),
		Export:  handler.NewExportHandler(reportSvc),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "CreatorPay API",
		ServerHeader: "CreatorPay",
	})
	router.Setup(app, h, cfg.CORSOrigins)

	middleware.Logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Msg("server starting")
	log.Fatal(app.Listen(":" + cfg.Port))
}
