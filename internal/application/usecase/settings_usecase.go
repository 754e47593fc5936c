package usecase

import (
	"encoding/json"

	"github.com/jhoicas/ScanInventario-api/internal/application/storage"
	"github.com/jhoicas/ScanInventario-api/internal/domain/entity"
	"github.com/jhoicas/ScanInventario-api/pkg/logger"
)

// SettingsUseCase casos de uso sobre el registro único de ajustes.
// No hay validación más allá de la forma de los tipos ni campos derivados.
type SettingsUseCase struct {
	storage *storage.Service
	log     *logger.Logger
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(st *storage.Service, log *logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{storage: st, log: log}
}

// Get devuelve los ajustes, siempre completos (parciales combinados sobre defaults).
func (uc *SettingsUseCase) Get() (entity.AppSettings, error) {
	return uc.storage.LoadSettings()
}

// Save escribe el registro completo.
func (uc *SettingsUseCase) Save(settings entity.AppSettings) error {
	if err := uc.storage.SaveSettings(settings); err != nil {
		uc.log.Error().Err(err).Msg("guardar ajustes")
		return err
	}
	return nil
}

// UpdateField actualiza un único ajuste por su nombre JSON.
func (uc *SettingsUseCase) UpdateField(key string, value json.RawMessage) (entity.AppSettings, error) {
	settings, err := uc.storage.UpdateSetting(key, value)
	if err != nil {
		return settings, err
	}
	uc.log.Debug().Str("ajuste", key).Msg("ajuste actualizado")
	return settings, nil
}

// Reset escribe los valores por defecto tal cual.
func (uc *SettingsUseCase) Reset() (entity.AppSettings, error) {
	return uc.storage.ResetSettings()
}
