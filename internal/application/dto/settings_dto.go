package dto

import (
	"encoding/json"

	"github.com/jhoicas/ScanInventario-api/internal/domain/entity"
)

// SettingsResponse el registro de ajustes siempre viaja completo.
type SettingsResponse struct {
	Settings entity.AppSettings `json:"settings"`
}

// UpdateSettingRequest valor crudo para actualizar un único ajuste;
// el tipo se valida contra el campo destino.
type UpdateSettingRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}
