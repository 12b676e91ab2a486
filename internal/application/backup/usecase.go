// Package backup exportación e importación del dataset completo como un único
// documento JSON, en el mismo formato que usa la sincronización.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vitormaquinas/os-master-api/internal/domain"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

// filenamePattern nombre del archivo de respaldo que espera el flujo legado.
const filenamePattern = "backup_os_master_%s.json"

// BackupUseCase exporta e importa snapshots completos.
type BackupUseCase struct {
	snapshots repository.SnapshotRepository
	now       func() time.Time
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(snapshots repository.SnapshotRepository) *BackupUseCase {
	return &BackupUseCase{snapshots: snapshots, now: time.Now}
}

// Export serializa el dataset completo con indentación y devuelve el contenido
// junto con el nombre de archivo sugerido (backup_os_master_YYYY-MM-DD.json).
func (uc *BackupUseCase) Export(ctx context.Context) (payload []byte, filename string, err error) {
	snap, err := uc.snapshots.ExportAll(ctx)
	if err != nil {
		return nil, "", err
	}
	payload, err = json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, "", err
	}
	filename = fmt.Sprintf(filenamePattern, uc.now().Format("2006-01-02"))
	return payload, filename, nil
}

// Import parsea el documento y reemplaza las colecciones presentes. Un
// documento no parseable o sin ninguna colección conocida se rechaza sin tocar
// el estado local.
func (uc *BackupUseCase) Import(ctx context.Context, payload []byte) error {
	var snap entity.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadSnapshot, err)
	}
	if snap.Empty() {
		return fmt.Errorf("%w: el documento no trae ninguna colección", domain.ErrBadSnapshot)
	}
	return uc.snapshots.ImportAll(ctx, snap)
}
