package repository

import (
	"context"

	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

// SessionRepository puerto para el puntero de sesión autenticada y el código
// de sincronización recordado localmente. Ambos viven en la misma colección
// persistida (la cuarta clave del layout legado).
type SessionRepository interface {
	// Get devuelve la proyección del usuario autenticado o nil si no hay sesión.
	Get(ctx context.Context) (*entity.SessionUser, error)
	// Set guarda la proyección; nil limpia la sesión.
	Set(ctx context.Context, user *entity.SessionUser) error
	// GetSyncCode devuelve el código de sincronización recordado ("" si ninguno).
	GetSyncCode(ctx context.Context) (string, error)
	// SetSyncCode recuerda el código usado en el último push/pull.
	SetSyncCode(ctx context.Context, code string) error
}
