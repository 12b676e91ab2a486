package usecase

import (
	"context"
	"fmt"

	"github.com/vitormaquinas/os-master-api/internal/application/ports"
	"github.com/vitormaquinas/os-master-api/internal/domain/printout"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

// PrintOrderUseCase compone e imprime una orden: busca la orden y la
// configuración de la empresa, deriva las dos vías (printout.Compose) y las
// materializa con el generador inyectado.
type PrintOrderUseCase struct {
	orders    *OrderUseCase
	settings  repository.SettingsRepository
	generator ports.PrintoutGenerator
}

// NewPrintOrderUseCase construye el caso de uso.
func NewPrintOrderUseCase(orders *OrderUseCase, settings repository.SettingsRepository, generator ports.PrintoutGenerator) *PrintOrderUseCase {
	return &PrintOrderUseCase{orders: orders, settings: settings, generator: generator}
}

// Print devuelve los bytes del documento (PDF) de la orden indicada.
func (uc *PrintOrderUseCase) Print(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	doc := printout.Compose(*order, settings)
	data, err := uc.generator.Generate(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("generar impresión de la orden %s: %w", order.OrderNumber, err)
	}
	return data, nil
}
