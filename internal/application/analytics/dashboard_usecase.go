package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vitormaquinas/os-master-api/internal/application/dto"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

// dashboardRecent número de órdenes en el widget de actividad reciente.
const dashboardRecent = 5

// DashboardUseCase calcula las métricas del tablero sobre el conjunto
// completo de órdenes leído del store.
type DashboardUseCase struct {
	orders repository.OrderRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(orders repository.OrderRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Revenue suma TotalValue únicamente de las órdenes Concluídas. Recent son
// las últimas 5 órdenes EN ORDEN DE INSERCIÓN, invertidas (la agregada más
// recientemente primero): la vista legada ordena aquí por posición en la
// colección y no por createdAt, a diferencia del listado filtrado, y ambos
// comportamientos se conservan tal cual.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: leer órdenes: %w", err)
	}

	summary := &dto.DashboardSummaryDTO{
		Total:   len(orders),
		Revenue: decimal.Zero,
		Recent:  recentOrders(orders),
	}
	for _, o := range orders {
		switch o.Status {
		case entity.StatusPendente:
			summary.Pending++
		case entity.StatusConcluida:
			summary.Completed++
			summary.Revenue = summary.Revenue.Add(o.TotalValue)
		}
	}
	return summary, nil
}

// recentOrders devuelve las últimas n órdenes del slice, invertidas.
func recentOrders(orders []entity.ServiceOrder) []entity.ServiceOrder {
	n := dashboardRecent
	if len(orders) < n {
		n = len(orders)
	}
	out := make([]entity.ServiceOrder, 0, n)
	for i := len(orders) - 1; i >= len(orders)-n; i-- {
		out = append(out, orders[i])
	}
	return out
}
