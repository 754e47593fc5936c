package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/ScanInventario-api/internal/domain"
	"github.com/jhoicas/ScanInventario-api/internal/domain/entity"
	"github.com/jhoicas/ScanInventario-api/internal/domain/repository"
	"github.com/jhoicas/ScanInventario-api/pkg/logger"
)

// Claves fijas del almacén local. La colección de productos se persiste
// completa bajo una sola clave: cada mutación reescribe el JSON entero.
const (
	productsKey = "scan_inventory_products"
	settingsKey = "scan_inventory_settings"
	lastSyncKey = "scan_inventory_last_sync"
)

// ExportDocument documento de exportación/importación de todos los datos locales.
type ExportDocument struct {
	Products   []entity.Product   `json:"products"`
	Settings   entity.AppSettings `json:"settings"`
	LastSync   *time.Time         `json:"lastSync"`
	ExportedAt time.Time          `json:"exportedAt"`
}

// Service capa de serialización sobre el puerto KVStore: productos como arreglo
// JSON (fechas ISO-8601), ajustes combinados sobre los valores por defecto y
// marca de última sincronización.
type Service struct {
	kv  repository.KVStore
	log *logger.Logger
}

// NewService construye el servicio de almacenamiento.
func NewService(kv repository.KVStore, log *logger.Logger) *Service {
	return &Service{kv: kv, log: log}
}

// SaveProducts serializa y reescribe la colección completa.
func (s *Service) SaveProducts(products []entity.Product) error {
	b, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("%w: serializar productos: %v", domain.ErrPersistence, err)
	}
	if err := s.kv.Set(productsKey, b); err != nil {
		return fmt.Errorf("%w: guardar productos: %v", domain.ErrPersistence, err)
	}
	return nil
}

// LoadProducts lee la colección persistida. Sin registro devuelve nil sin error.
func (s *Service) LoadProducts() ([]entity.Product, error) {
	b, found, err := s.kv.Get(productsKey)
	if err != nil {
		return nil, fmt.Errorf("%w: leer productos: %v", domain.ErrPersistence, err)
	}
	if !found {
		return nil, nil
	}
	var products []entity.Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("%w: parsear productos: %v", domain.ErrPersistence, err)
	}
	return products, nil
}

// ClearProducts elimina la colección persistida.
func (s *Service) ClearProducts() error {
	if err := s.kv.Delete(productsKey); err != nil {
		return fmt.Errorf("%w: limpiar productos: %v", domain.ErrPersistence, err)
	}
	return nil
}

// HasLocalData indica si hay productos en el almacén local.
func (s *Service) HasLocalData() bool {
	has, err := s.kv.Has(productsKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("consultar datos locales")
		return false
	}
	return has
}

// SaveSettings escribe el registro completo de ajustes.
func (s *Service) SaveSettings(settings entity.AppSettings) error {
	b, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: serializar ajustes: %v", domain.ErrPersistence, err)
	}
	if err := s.kv.Set(settingsKey, b); err != nil {
		return fmt.Errorf("%w: guardar ajustes: %v", domain.ErrPersistence, err)
	}
	return nil
}

// LoadSettings lee los ajustes combinando lo persistido sobre los valores por
// defecto: toda clave ausente conserva su valor por defecto, así el registro
// siempre está completo aunque se hayan agregado campos nuevos.
func (s *Service) LoadSettings() (entity.AppSettings, error) {
	settings := entity.DefaultSettings()
	b, found, err := s.kv.Get(settingsKey)
	if err != nil {
		return settings, fmt.Errorf("%w: leer ajustes: %v", domain.ErrPersistence, err)
	}
	if !found {
		return settings, nil
	}
	if err := json.Unmarshal(b, &settings); err != nil {
		s.log.Warn().Err(err).Msg("ajustes corruptos, se usan los valores por defecto")
		return entity.DefaultSettings(), nil
	}
	return settings, nil
}

// UpdateSetting actualiza un único campo (ciclo leer-modificar-guardar).
// Las claves válidas son los nombres JSON del registro de ajustes.
func (s *Service) UpdateSetting(key string, value json.RawMessage) (entity.AppSettings, error) {
	settings, err := s.LoadSettings()
	if err != nil {
		return settings, err
	}

	var target any
	switch key {
	case "offlineMode":
		target = &settings.OfflineMode
	case "darkMode":
		target = &settings.DarkMode
	case "autoSync":
		target = &settings.AutoSync
	case "language":
		target = &settings.Language
	case "scanSoundEnabled":
		target = &settings.ScanSoundEnabled
	case "vibrationEnabled":
		target = &settings.VibrationEnabled
	default:
		return settings, fmt.Errorf("%w: ajuste desconocido %q", domain.ErrInvalidInput, key)
	}
	if err := json.Unmarshal(value, target); err != nil {
		return settings, fmt.Errorf("%w: valor inválido para %q", domain.ErrInvalidInput, key)
	}

	if err := s.SaveSettings(settings); err != nil {
		return settings, err
	}
	return settings, nil
}

// ResetSettings escribe los valores por defecto tal cual.
func (s *Service) ResetSettings() (entity.AppSettings, error) {
	defaults := entity.DefaultSettings()
	if err := s.SaveSettings(defaults); err != nil {
		return defaults, err
	}
	return defaults, nil
}

// SetLastSync guarda la marca de última sincronización (ISO-8601).
func (s *Service) SetLastSync(t time.Time) error {
	if err := s.kv.Set(lastSyncKey, []byte(t.UTC().Format(time.RFC3339))); err != nil {
		return fmt.Errorf("%w: guardar última sincronización: %v", domain.ErrPersistence, err)
	}
	return nil
}

// LastSync devuelve la marca de última sincronización, o nil si nunca se sincronizó.
func (s *Service) LastSync() (*time.Time, error) {
	b, found, err := s.kv.Get(lastSyncKey)
	if err != nil {
		return nil, fmt.Errorf("%w: leer última sincronización: %v", domain.ErrPersistence, err)
	}
	if !found {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, string(b))
	if err != nil {
		s.log.Warn().Str("valor", string(b)).Msg("marca de sincronización ilegible")
		return nil, nil
	}
	return &t, nil
}

// ClearAll elimina todos los datos de la aplicación.
func (s *Service) ClearAll() error {
	for _, key := range []string{productsKey, settingsKey, lastSyncKey} {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("%w: limpiar %q: %v", domain.ErrPersistence, key, err)
		}
	}
	return nil
}

// Export serializa todos los datos locales como JSON legible.
func (s *Service) Export() ([]byte, error) {
	products, err := s.LoadProducts()
	if err != nil {
		return nil, err
	}
	settings, err := s.LoadSettings()
	if err != nil {
		return nil, err
	}
	lastSync, err := s.LastSync()
	if err != nil {
		return nil, err
	}
	doc := ExportDocument{
		Products:   products,
		Settings:   settings,
		LastSync:   lastSync,
		ExportedAt: time.Now().UTC(),
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: serializar exportación: %v", domain.ErrPersistence, err)
	}
	return b, nil
}

// Import aplica un documento exportado. Productos y ajustes se aplican de forma
// independiente: cualquiera de los dos puede faltar.
func (s *Service) Import(data []byte) error {
	var doc struct {
		Products *[]entity.Product   `json:"products"`
		Settings *entity.AppSettings `json:"settings"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: documento de importación ilegible", domain.ErrInvalidInput)
	}
	if doc.Products != nil {
		if err := s.SaveProducts(*doc.Products); err != nil {
			return err
		}
	}
	if doc.Settings != nil {
		if err := s.SaveSettings(*doc.Settings); err != nil {
			return err
		}
	}
	return nil
}
