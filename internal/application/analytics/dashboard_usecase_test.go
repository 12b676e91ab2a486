package analytics_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitormaquinas/os-master-api/internal/application/analytics"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

// fakeOrderRepo devuelve un slice fijo en orden de inserción.
type fakeOrderRepo struct {
	orders []entity.ServiceOrder
}

func (f *fakeOrderRepo) List(_ context.Context) ([]entity.ServiceOrder, error) {
	return f.orders, nil
}
func (f *fakeOrderRepo) Save(_ context.Context, _ entity.ServiceOrder) error { return nil }
func (f *fakeOrderRepo) Delete(_ context.Context, _ string) error            { return nil }

func withStatus(status string, total int64) entity.ServiceOrder {
	return entity.ServiceOrder{
		ID:         fmt.Sprintf("%s-%d", status, total),
		Status:     status,
		TotalValue: decimal.NewFromInt(total),
	}
}

// Solo las órdenes Concluídas aportan a revenue; las Canceladas nunca.
func TestGetSummary_RevenueSoloDeConcluidas(t *testing.T) {
	repo := &fakeOrderRepo{orders: []entity.ServiceOrder{
		withStatus(entity.StatusConcluida, 100),
		withStatus(entity.StatusPendente, 50),
		withStatus(entity.StatusCancelada, 200),
	}}
	uc := analytics.NewDashboardUseCase(repo)

	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 1, s.Completed)
	assert.True(t, s.Revenue.Equal(decimal.NewFromInt(100)),
		"revenue = 100: solo la orden Concluída aporta")
}

func TestGetSummary_ConteosPorEstado(t *testing.T) {
	repo := &fakeOrderRepo{orders: []entity.ServiceOrder{
		withStatus(entity.StatusPendente, 1),
		withStatus(entity.StatusPendente, 2),
		withStatus(entity.StatusEmExecucao, 3),
		withStatus(entity.StatusConcluida, 4),
	}}
	uc := analytics.NewDashboardUseCase(repo)

	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.Completed)
}

// Recent es por orden de inserción invertido (posición en la colección), NO
// por createdAt: es la divergencia deliberada de la vista legada frente al
// listado filtrado.
func TestGetSummary_RecentUltimas5PorInsercionInvertidas(t *testing.T) {
	var orders []entity.ServiceOrder
	for i := 1; i <= 7; i++ {
		o := withStatus(entity.StatusPendente, int64(i))
		o.ID = fmt.Sprintf("o%d", i)
		orders = append(orders, o)
	}
	uc := analytics.NewDashboardUseCase(&fakeOrderRepo{orders: orders})

	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, s.Recent, 5)
	ids := []string{s.Recent[0].ID, s.Recent[1].ID, s.Recent[2].ID, s.Recent[3].ID, s.Recent[4].ID}
	assert.Equal(t, []string{"o7", "o6", "o5", "o4", "o3"}, ids)
}

func TestGetSummary_StoreVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeOrderRepo{})
	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, s.Total)
	assert.True(t, s.Revenue.IsZero())
	assert.Empty(t, s.Recent)
}
