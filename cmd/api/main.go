package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/ScanInventario-api/internal/application/catalog"
	"github.com/jhoicas/ScanInventario-api/internal/application/storage"
	"github.com/jhoicas/ScanInventario-api/internal/application/usecase"
	"github.com/jhoicas/ScanInventario-api/internal/infrastructure/boltkv"
	"github.com/jhoicas/ScanInventario-api/internal/infrastructure/scanner"
	httpRouter "github.com/jhoicas/ScanInventario-api/internal/interfaces/http"
	"github.com/jhoicas/ScanInventario-api/pkg/config"
	"github.com/jhoicas/ScanInventario-api/pkg/logger"
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

	kv, err := boltkv.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir almacenamiento local")
	}
	defer kv.Close()

	storageSvc := storage.NewService(kv, log)
	store := catalog.NewStore(storageSvc, log)
	if err := store.Init(); err != nil {
		log.Fatal().Err(err).Msg("cargar colección de productos")
	}

	productUC := usecase.NewProductUseCase(store, usecase.APIOptions{
		LatencyScale: cfg.API.LatencyScale,
		ProbeURL:     cfg.API.ProbeURL,
		ProbeTimeout: time.Duration(cfg.API.ProbeTimeoutSec) * time.Second,
	}, log)
	settingsUC := usecase.NewSettingsUseCase(storageSvc, log)
	syncUC := usecase.NewSyncUseCase(storageSvc, store, productUC.CheckAPIConnection, log)
	scannerSvc := scanner.NewSimulated(cfg.Scanner.CameraAvailable, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		SettingsUC: settingsUC,
		SyncUC:     syncUC,
		Scanner:    scannerSvc,
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
