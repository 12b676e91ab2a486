// Package analytics contiene la consulta/agregación sobre el conjunto de
// órdenes: el filtro de la vista de listado y las métricas del tablero.
package analytics

import (
	"sort"
	"strings"

	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

// StatusAll valor del filtro de estado que no excluye nada.
const StatusAll = "all"

// FilterOrders filtra y ordena para la vista de listado.
//
// Reglas (idénticas a la vista legada):
//   - query hace substring sin distinguir mayúsculas sobre nombre del cliente,
//     orderNumber y nombre del equipo, y substring EXACTO (sensible a
//     mayúsculas) sobre el CNPJ;
//   - status "all" acepta todo, cualquier otro valor exige igualdad exacta;
//   - resultado ordenado por createdAt descendente, con empates en el orden
//     original del store (sort estable).
func FilterOrders(orders []entity.ServiceOrder, query, status string) []entity.ServiceOrder {
	q := strings.ToLower(query)

	out := make([]entity.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if !matchesQuery(o, query, q) {
			continue
		}
		if status != StatusAll && status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matchesQuery(o entity.ServiceOrder, raw, lowered string) bool {
	if raw == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Client.Name), lowered) ||
		strings.Contains(strings.ToLower(o.OrderNumber), lowered) ||
		strings.Contains(strings.ToLower(o.EquipmentName), lowered) ||
		strings.Contains(o.Client.CNPJ, raw)
}
