package repository

import (
	"context"

	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios. La colección es
// append-only: los usuarios no se actualizan ni se borran.
type UserRepository interface {
	// List devuelve todos los usuarios, con credencial incluida.
	List(ctx context.Context) ([]entity.User, error)
	// Create agrega un usuario; devuelve domain.ErrUsernameTaken si el
	// username ya existe (comparación exacta, sensible a mayúsculas).
	Create(ctx context.Context, user entity.User) error
	// FindByUsername devuelve el usuario o nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
