package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// sessionDoc documento persistido bajo la clave de sesión: el puntero al
// usuario autenticado y el código de sincronización recordado.
type sessionDoc struct {
	User     *entity.SessionUser `json:"user"`
	SyncCode string              `json:"syncCode,omitempty"`
}

// SessionRepo implementación del puerto SessionRepository.
type SessionRepo struct {
	store *collectionStore
}

// NewSessionRepository construye el adaptador de persistencia para la sesión.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{store: &collectionStore{pool: pool}}
}

// Get devuelve la proyección del usuario autenticado o nil.
func (r *SessionRepo) Get(ctx context.Context) (*entity.SessionUser, error) {
	var doc sessionDoc
	if err := r.store.load(ctx, keySession, &doc); err != nil {
		return nil, err
	}
	return doc.User, nil
}

// Set guarda la proyección; nil limpia la sesión. El código de sincronización
// recordado sobrevive al cambio de sesión.
func (r *SessionRepo) Set(ctx context.Context, user *entity.SessionUser) error {
	return r.store.update(ctx, keySession, func(current []byte) (any, error) {
		var doc sessionDoc
		decodeOrZero(keySession, current, &doc)
		doc.User = user
		return doc, nil
	})
}

// GetSyncCode devuelve el código recordado ("" si ninguno).
func (r *SessionRepo) GetSyncCode(ctx context.Context) (string, error) {
	var doc sessionDoc
	if err := r.store.load(ctx, keySession, &doc); err != nil {
		return "", err
	}
	return doc.SyncCode, nil
}

// SetSyncCode recuerda el código del último push/pull.
func (r *SessionRepo) SetSyncCode(ctx context.Context, code string) error {
	return r.store.update(ctx, keySession, func(current []byte) (any, error) {
		var doc sessionDoc
		decodeOrZero(keySession, current, &doc)
		doc.SyncCode = code
		return doc, nil
	})
}
