// Package sync coordina el movimiento del dataset completo entre instancias a
// través de un vault remoto direccionado por código.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/vitormaquinas/os-master-api/internal/application/ports"
	"github.com/vitormaquinas/os-master-api/internal/domain"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

// codeAlphabet alfabeto de los códigos de sincronización: 8 caracteres
// alfanuméricos en mayúsculas, legibles para dictar por teléfono.
const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8
)

// SyncUseCase push/pull del snapshot contra el vault remoto.
type SyncUseCase struct {
	snapshots repository.SnapshotRepository
	session   repository.SessionRepository
	vault     ports.SyncVault
}

// NewSyncUseCase construye el caso de uso.
func NewSyncUseCase(snapshots repository.SnapshotRepository, session repository.SessionRepository, vault ports.SyncVault) *SyncUseCase {
	return &SyncUseCase{snapshots: snapshots, session: session, vault: vault}
}

// GenerateCode genera un código nuevo y lo recuerda como código activo.
func (uc *SyncUseCase) GenerateCode(ctx context.Context) (string, error) {
	buf := make([]byte, codeLength)
	for i := range buf {
		buf[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	code := string(buf)
	if err := uc.session.SetSyncCode(ctx, code); err != nil {
		return "", err
	}
	return code, nil
}

// CurrentCode devuelve el código recordado del último push/pull ("" si ninguno).
func (uc *SyncUseCase) CurrentCode(ctx context.Context) (string, error) {
	return uc.session.GetSyncCode(ctx)
}

// Push exporta el dataset completo y lo escribe en el slot del código,
// sobreescribiendo lo que hubiera (last-writer-wins). Recuerda el código como
// código activo.
func (uc *SyncUseCase) Push(ctx context.Context, code string) error {
	code, err := normalizeCode(code)
	if err != nil {
		return err
	}
	snap, err := uc.snapshots.ExportAll(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := uc.vault.Put(ctx, code, payload); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("push al vault de sincronización falló")
		return fmt.Errorf("%w: %v", domain.ErrSyncFailed, err)
	}
	return uc.session.SetSyncCode(ctx, code)
}

// Pull lee el slot del código y reemplaza las colecciones locales presentes en
// el snapshot remoto. Cualquier fallo (red, código inexistente, payload no
// parseable) deja el estado local intacto.
func (uc *SyncUseCase) Pull(ctx context.Context, code string) error {
	code, err := normalizeCode(code)
	if err != nil {
		return err
	}
	payload, err := uc.vault.Get(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: código %s no encontrado", domain.ErrNotFound, code)
		}
		log.Warn().Err(err).Str("code", code).Msg("pull del vault de sincronización falló")
		return fmt.Errorf("%w: %v", domain.ErrSyncFailed, err)
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadSnapshot, err)
	}
	if snap.Empty() {
		return fmt.Errorf("%w: el documento remoto no trae ninguna colección", domain.ErrBadSnapshot)
	}
	if err := uc.snapshots.ImportAll(ctx, snap); err != nil {
		return err
	}
	return uc.session.SetSyncCode(ctx, code)
}

func normalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("%w: código de sincronización requerido", domain.ErrValidation)
	}
	return code, nil
}
