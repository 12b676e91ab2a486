package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre el documento
// singleton de configuración de la empresa.
type SettingsRepo struct {
	store *collectionStore
}

// NewSettingsRepository construye el adaptador de persistencia para la configuración.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{store: &collectionStore{pool: pool}}
}

// Get devuelve la configuración guardada, o el placeholder por defecto si el
// documento está vacío o corrupto.
func (r *SettingsRepo) Get(ctx context.Context) (entity.CompanySettings, error) {
	var settings entity.CompanySettings
	if err := r.store.load(ctx, keySettings, &settings); err != nil {
		return entity.CompanySettings{}, err
	}
	if settings.Name == "" {
		return entity.DefaultSettings(), nil
	}
	return settings, nil
}

// Save sobreescribe el singleton completo.
func (r *SettingsRepo) Save(ctx context.Context, settings entity.CompanySettings) error {
	return r.store.store(ctx, keySettings, settings)
}
