package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ScanInventario-api/internal/application/catalog"
	"github.com/jhoicas/ScanInventario-api/internal/application/dto"
	"github.com/jhoicas/ScanInventario-api/internal/application/storage"
	"github.com/jhoicas/ScanInventario-api/pkg/logger"
)

// SyncUseCase sincronización y gestión de datos locales: marca de última
// sincronización, exportación/importación y limpieza total.
type SyncUseCase struct {
	storage *storage.Service
	store   *catalog.Store
	probe   func(context.Context) bool
	log     *logger.Logger
}

// NewSyncUseCase construye el caso de uso. probe es la sonda de conectividad
// (la misma de la fachada de productos).
func NewSyncUseCase(st *storage.Service, store *catalog.Store, probe func(context.Context) bool, log *logger.Logger) *SyncUseCase {
	return &SyncUseCase{storage: st, store: store, probe: probe, log: log}
}

// Status estado actual: última sincronización, conectividad y si hay datos locales.
func (uc *SyncUseCase) Status(ctx context.Context) (dto.SyncStatusResponse, error) {
	lastSync, err := uc.storage.LastSync()
	if err != nil {
		return dto.SyncStatusResponse{}, err
	}
	return dto.SyncStatusResponse{
		LastSync:  lastSync,
		Connected: uc.probe(ctx),
		HasData:   uc.storage.HasLocalData(),
	}, nil
}

// MarkSynced registra el momento de la sincronización.
func (uc *SyncUseCase) MarkSynced() (time.Time, error) {
	now := time.Now().UTC()
	if err := uc.storage.SetLastSync(now); err != nil {
		return time.Time{}, err
	}
	uc.log.Info().Time("momento", now).Msg("sincronización registrada")
	return now, nil
}

// Export serializa todos los datos locales como JSON legible.
func (uc *SyncUseCase) Export() ([]byte, error) {
	return uc.storage.Export()
}

// Import aplica un documento exportado y recarga el store para que la
// colección en memoria y los suscriptores adopten lo importado.
func (uc *SyncUseCase) Import(data []byte) error {
	if err := uc.storage.Import(data); err != nil {
		return err
	}
	return uc.store.Reload()
}

// ClearAll elimina todos los datos locales y recarga el store (que vuelve a
// sembrar la colección de demostración: el store nunca queda vacío y sin persistir).
func (uc *SyncUseCase) ClearAll() error {
	if err := uc.storage.ClearAll(); err != nil {
		return err
	}
	uc.log.Warn().Msg("datos locales eliminados")
	return uc.store.Reload()
}
