package repository

import (
	"context"

	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

// SettingsRepository puerto para el singleton CompanySettings.
type SettingsRepository interface {
	// Get devuelve la configuración, o el placeholder por defecto si no hay
	// nada guardado (o el payload está corrupto).
	Get(ctx context.Context) (entity.CompanySettings, error)
	// Save sobreescribe el singleton completo.
	Save(ctx context.Context, settings entity.CompanySettings) error
}
