package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ScanInventario-api/internal/application/dto"
	"github.com/jhoicas/ScanInventario-api/internal/application/usecase"
	"github.com/jhoicas/ScanInventario-api/internal/domain"
	"github.com/jhoicas/ScanInventario-api/internal/domain/entity"
)

// SettingsHandler maneja las peticiones HTTP de ajustes.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener ajustes (siempre completos)
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.uc.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*dto.SettingsResponse]("No se pudieron leer los ajustes"))
	}
	return c.JSON(dto.SettingsResponse{Settings: settings})
}

// Save godoc
// @Summary      Guardar el registro completo de ajustes
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  entity.AppSettings  true  "Ajustes"
// @Success      200   {object}  dto.SettingsResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var in entity.AppSettings
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*dto.SettingsResponse](msgCuerpoInvalido))
	}
	if err := h.uc.Save(in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*dto.SettingsResponse]("No se pudieron guardar los ajustes"))
	}
	return c.JSON(dto.SettingsResponse{Settings: in})
}

// UpdateField godoc
// @Summary      Actualizar un único ajuste
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        key   path  string  true  "Nombre JSON del ajuste (ej. darkMode)"
// @Param        body  body  dto.UpdateSettingRequest  true  "Nuevo valor"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.Response[*dto.SettingsResponse]
// @Router       /api/settings/{key} [patch]
func (h *SettingsHandler) UpdateField(c *fiber.Ctx) error {
	var in dto.UpdateSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*dto.SettingsResponse](msgCuerpoInvalido))
	}
	settings, err := h.uc.UpdateField(c.Params("key"), in.Value)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*dto.SettingsResponse]("Ajuste o valor inválido"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*dto.SettingsResponse]("No se pudieron guardar los ajustes"))
	}
	return c.JSON(dto.SettingsResponse{Settings: settings})
}

// Reset godoc
// @Summary      Restablecer ajustes a los valores por defecto
// @Tags         settings
// @Produce      json
// @Param        confirm  query  string  true  "Debe ser true"
// @Success      200  {object}  dto.SettingsResponse
// @Failure      400  {object}  dto.Response[*dto.SettingsResponse]
// @Router       /api/settings/reset [post]
func (h *SettingsHandler) Reset(c *fiber.Ctx) error {
	if !confirmed(c) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*dto.SettingsResponse](msgConfirmacion))
	}
	settings, err := h.uc.Reset()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*dto.SettingsResponse]("No se pudieron guardar los ajustes"))
	}
	return c.JSON(dto.SettingsResponse{Settings: settings})
}
