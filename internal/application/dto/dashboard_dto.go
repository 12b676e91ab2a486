package dto

import (
	"github.com/shopspring/decimal"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

// DashboardSummaryDTO métricas del tablero sobre el conjunto completo de órdenes.
//
// Revenue suma TotalValue solo de las órdenes Concluídas; Pendentes,
// Em Execução y Canceladas nunca aportan.
type DashboardSummaryDTO struct {
	Total     int                   `json:"total"`
	Pending   int                   `json:"pending"`
	Completed int                   `json:"completed"`
	Revenue   decimal.Decimal       `json:"revenue"`
	Recent    []entity.ServiceOrder `json:"recent"`
}
