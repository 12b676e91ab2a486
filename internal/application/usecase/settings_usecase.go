package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitormaquinas/os-master-api/internal/application/dto"
	"github.com/vitormaquinas/os-master-api/internal/domain"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

// SettingsUseCase lectura y sobreescritura del singleton CompanySettings.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get devuelve la configuración actual (placeholder si nunca se guardó).
func (uc *SettingsUseCase) Get(ctx context.Context) (entity.CompanySettings, error) {
	return uc.settings.Get(ctx)
}

// Save sobreescribe el singleton completo.
func (uc *SettingsUseCase) Save(ctx context.Context, in dto.SaveSettingsRequest) (entity.CompanySettings, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.CompanySettings{}, fmt.Errorf("%w: nombre de la empresa requerido", domain.ErrValidation)
	}
	s := entity.CompanySettings{Name: name, Logo: in.Logo}
	if err := uc.settings.Save(ctx, s); err != nil {
		return entity.CompanySettings{}, err
	}
	return s, nil
}
