package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ScanInventario-api/internal/application/dto"
	"github.com/jhoicas/ScanInventario-api/internal/application/usecase"
	"github.com/jhoicas/ScanInventario-api/internal/domain"
)

// SyncHandler sincronización, exportación/importación y limpieza de datos.
type SyncHandler struct {
	uc *usecase.SyncUseCase
}

// NewSyncHandler construye el handler.
func NewSyncHandler(uc *usecase.SyncUseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// Status godoc
// @Summary      Estado de sincronización y conectividad
// @Tags         sync
// @Produce      json
// @Success      200  {object}  dto.SyncStatusResponse
// @Router       /api/sync/status [get]
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	status, err := h.uc.Status(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*dto.SyncStatusResponse]("No se pudo leer el estado de sincronización"))
	}
	return c.JSON(status)
}

// MarkSynced godoc
// @Summary      Registrar una sincronización
// @Tags         sync
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/sync/now [post]
func (h *SyncHandler) MarkSynced(c *fiber.Ctx) error {
	momento, err := h.uc.MarkSynced()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*dto.SyncStatusResponse]("No se pudo registrar la sincronización"))
	}
	return c.JSON(fiber.Map{"lastSync": momento})
}

// Export godoc
// @Summary      Exportar todos los datos locales como JSON
// @Tags         sync
// @Produce      json
// @Success      200  {object}  storage.ExportDocument
// @Router       /api/sync/export [get]
func (h *SyncHandler) Export(c *fiber.Ctx) error {
	doc, err := h.uc.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*dto.SyncStatusResponse]("No se pudo exportar"))
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(doc)
}

// Import godoc
// @Summary      Importar un documento exportado (productos y ajustes independientes)
// @Tags         sync
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  dto.Response[*dto.SyncStatusResponse]
// @Router       /api/sync/import [post]
func (h *SyncHandler) Import(c *fiber.Ctx) error {
	if err := h.uc.Import(c.Body()); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*dto.SyncStatusResponse]("Documento de importación inválido"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*dto.SyncStatusResponse]("No se pudo importar"))
	}
	return c.JSON(fiber.Map{"imported": true})
}

// ClearAll godoc
// @Summary      Eliminar todos los datos locales (requiere confirmación)
// @Tags         sync
// @Produce      json
// @Param        confirm  query  string  true  "Debe ser true"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  dto.Response[*dto.SyncStatusResponse]
// @Router       /api/sync/data [delete]
func (h *SyncHandler) ClearAll(c *fiber.Ctx) error {
	if !confirmed(c) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*dto.SyncStatusResponse](msgConfirmacion))
	}
	if err := h.uc.ClearAll(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*dto.SyncStatusResponse]("No se pudieron eliminar los datos"))
	}
	return c.JSON(fiber.Map{"cleared": true})
}
