package dto

import (
	"github.com/shopspring/decimal"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

// ServiceItemInput línea de servicio en una petición de guardado.
type ServiceItemInput struct {
	ID          string          `json:"id"` // vacío → se genera
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// SaveOrderRequest entrada para crear o editar una orden de servicio.
// totalValue no se acepta del caller: siempre se recalcula en el caso de uso.
type SaveOrderRequest struct {
	ID            string             `json:"id"` // vacío en creación
	Client        entity.ClientData  `json:"client"`
	EquipmentName string             `json:"equipmentName"`
	SerialNumber  string             `json:"serialNumber"`
	EntryDate     string             `json:"entryDate"`
	Services      []ServiceItemInput `json:"services"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes"`
}

// OrderListResponse listado de órdenes (ya filtrado/ordenado por el servidor).
type OrderListResponse struct {
	Items []entity.ServiceOrder `json:"items"`
	Total int                   `json:"total"`
}
