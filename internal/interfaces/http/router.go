package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ScanInventario-api/internal/application/ports"
	"github.com/jhoicas/ScanInventario-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	SettingsUC *usecase.SettingsUseCase
	SyncUC     *usecase.SyncUseCase
	Scanner    ports.ScannerService
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	// /search y /stats antes de /:id para que no las capture el parámetro
	products.Get("/search", productHandler.Search)
	products.Get("/stats", productHandler.Stats)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Settings
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Save)
	settings.Patch("/:key", settingsHandler.UpdateField)
	settings.Post("/reset", settingsHandler.Reset)

	// Sync y gestión de datos locales
	sync := api.Group("/sync")
	syncHandler := NewSyncHandler(deps.SyncUC)
	sync.Get("/status", syncHandler.Status)
	sync.Post("/now", syncHandler.MarkSynced)
	sync.Get("/export", syncHandler.Export)
	sync.Post("/import", syncHandler.Import)
	sync.Delete("/data", syncHandler.ClearAll)

	// Escaneo, cámara y estado de la API
	scanHandler := NewScanHandler(deps.Scanner, deps.ProductUC)
	api.Post("/scan", scanHandler.Scan)
	camera := api.Group("/camera")
	camera.Get("/available", scanHandler.CameraAvailable)
	camera.Post("/permission", scanHandler.RequestPermission)
	camera.Post("/capture", scanHandler.Capture)
	api.Get("/status", scanHandler.APIStatus)
}
