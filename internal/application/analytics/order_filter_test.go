package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitormaquinas/os-master-api/internal/application/analytics"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

func order(num, clientName, cnpj, equipment, status string, createdAt time.Time) entity.ServiceOrder {
	return entity.ServiceOrder{
		ID:            num,
		OrderNumber:   num,
		Client:        entity.ClientData{Name: clientName, CNPJ: cnpj},
		EquipmentName: equipment,
		Status:        status,
		CreatedAt:     createdAt,
	}
}

func TestFilterOrders_QuerySinDistinguirMayusculas(t *testing.T) {
	t0 := time.Now()
	orders := []entity.ServiceOrder{
		order("OS-10001", "Acme", "111", "Notebook", entity.StatusPendente, t0),
		order("OS-10002", "Beta", "222", "Impresora", entity.StatusPendente, t0),
	}

	for _, q := range []string{"acme", "ACME", "Acme", "aCmE"} {
		got := analytics.FilterOrders(orders, q, analytics.StatusAll)
		require.Len(t, got, 1, "query %q", q)
		assert.Equal(t, "OS-10001", got[0].OrderNumber)
	}
}

func TestFilterOrders_BuscaPorNumeroYEquipo(t *testing.T) {
	t0 := time.Now()
	orders := []entity.ServiceOrder{
		order("OS-10001", "Acme", "111", "Notebook Dell", entity.StatusPendente, t0),
		order("OS-10002", "Beta", "222", "Impresora HP", entity.StatusPendente, t0),
	}

	got := analytics.FilterOrders(orders, "10002", analytics.StatusAll)
	require.Len(t, got, 1)
	assert.Equal(t, "Beta", got[0].Client.Name)

	got = analytics.FilterOrders(orders, "impresora", analytics.StatusAll)
	require.Len(t, got, 1)
	assert.Equal(t, "OS-10002", got[0].OrderNumber)
}

// El CNPJ se compara como substring EXACTO, sensible a mayúsculas (la vista
// legada no normaliza este campo).
func TestFilterOrders_CNPJEsSensibleAMayusculas(t *testing.T) {
	t0 := time.Now()
	orders := []entity.ServiceOrder{
		order("OS-10001", "Acme", "12.345.678/0001-90", "Notebook", entity.StatusPendente, t0),
	}

	assert.Len(t, analytics.FilterOrders(orders, "345.678", analytics.StatusAll), 1)
	// un query que solo matchearía el cnpj tras normalización no debe matchear
	assert.Empty(t, analytics.FilterOrders(orders, "x345", analytics.StatusAll))
}

func TestFilterOrders_FiltroDeEstado(t *testing.T) {
	t0 := time.Now()
	orders := []entity.ServiceOrder{
		order("OS-10001", "Acme", "111", "A", entity.StatusPendente, t0),
		order("OS-10002", "Acme", "111", "B", entity.StatusConcluida, t0),
		order("OS-10003", "Acme", "111", "C", entity.StatusCancelada, t0),
	}

	got := analytics.FilterOrders(orders, "", entity.StatusConcluida)
	require.Len(t, got, 1)
	assert.Equal(t, "OS-10002", got[0].OrderNumber)

	assert.Len(t, analytics.FilterOrders(orders, "", analytics.StatusAll), 3)
}

func TestFilterOrders_OrdenaPorCreatedAtDescendenteConEmpatesEstables(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	orders := []entity.ServiceOrder{
		order("OS-1", "Acme", "1", "A", entity.StatusPendente, t0),
		order("OS-2", "Acme", "1", "B", entity.StatusPendente, t0.Add(2*time.Hour)),
		order("OS-3", "Acme", "1", "C", entity.StatusPendente, t0),          // empata con OS-1
		order("OS-4", "Acme", "1", "D", entity.StatusPendente, t0.Add(time.Hour)),
	}

	got := analytics.FilterOrders(orders, "", analytics.StatusAll)
	nums := []string{got[0].OrderNumber, got[1].OrderNumber, got[2].OrderNumber, got[3].OrderNumber}
	assert.Equal(t, []string{"OS-2", "OS-4", "OS-1", "OS-3"}, nums,
		"descendente por createdAt; los empates conservan el orden del store")
}

func TestFilterOrders_QueryVacioDevuelveTodo(t *testing.T) {
	t0 := time.Now()
	orders := []entity.ServiceOrder{
		order("OS-1", "Acme", "1", "A", entity.StatusPendente, t0),
		order("OS-2", "Beta", "2", "B", entity.StatusPendente, t0),
	}
	assert.Len(t, analytics.FilterOrders(orders, "", ""), 2)
}
