package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitormaquinas/os-master-api/internal/domain"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el documento de
// usuarios (colección append-only).
type UserRepo struct {
	store *collectionStore
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{store: &collectionStore{pool: pool}}
}

// List devuelve todos los usuarios.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	users := []entity.User{}
	if err := r.store.load(ctx, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create agrega un usuario. La verificación de unicidad se hace dentro de la
// misma transacción que la escritura, así dos registros concurrentes del mismo
// username no pueden colarse ambos.
func (r *UserRepo) Create(ctx context.Context, user entity.User) error {
	return r.store.update(ctx, keyUsers, func(current []byte) (any, error) {
		users := []entity.User{}
		decodeOrZero(keyUsers, current, &users)
		for i := range users {
			if users[i].Username == user.Username {
				return nil, domain.ErrUsernameTaken
			}
		}
		return append(users, user), nil
	})
}

// FindByUsername devuelve el usuario (comparación exacta) o nil si no existe.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}
