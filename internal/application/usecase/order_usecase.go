package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitormaquinas/os-master-api/internal/application/dto"
	"github.com/vitormaquinas/os-master-api/internal/domain"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes de servicio: listar, guardar
// (crear/editar) y eliminar. Es el único lugar donde se recalcula TotalValue
// y se refrescan los timestamps; el repositorio recibe la orden ya consistente.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// List devuelve todas las órdenes tal como están almacenadas (los callers
// reordenan según la vista).
func (uc *OrderUseCase) List(ctx context.Context) ([]entity.ServiceOrder, error) {
	return uc.orders.List(ctx)
}

// GetByID busca una orden por id; domain.ErrNotFound si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*entity.ServiceOrder, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Save valida, completa y persiste una orden. Con ID vacío crea (genera id,
// orderNumber y createdAt); con ID existente edita preservando orderNumber y
// createdAt. UpdatedAt se refresca siempre y TotalValue se recalcula siempre.
func (uc *OrderUseCase) Save(ctx context.Context, in dto.SaveOrderRequest) (*entity.ServiceOrder, error) {
	if err := validateOrderInput(in); err != nil {
		return nil, err
	}

	items := make([]entity.ServiceItem, 0, len(in.Services))
	for _, s := range in.Services {
		id := s.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, entity.ServiceItem{
			ID:          id,
			Description: strings.TrimSpace(s.Description),
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
		})
	}

	now := time.Now()
	order := entity.ServiceOrder{
		ID:            in.ID,
		Client:        in.Client,
		EquipmentName: strings.TrimSpace(in.EquipmentName),
		SerialNumber:  strings.TrimSpace(in.SerialNumber),
		EntryDate:     in.EntryDate,
		Services:      items,
		Status:        in.Status,
		Notes:         in.Notes,
		UpdatedAt:     now,
	}

	if in.ID == "" {
		// Creación: identidad nueva y número humano inmutable.
		order.ID = uuid.New().String()
		num, err := uc.nextOrderNumber(ctx)
		if err != nil {
			return nil, err
		}
		order.OrderNumber = num
		order.CreatedAt = now
	} else {
		existing, err := uc.GetByID(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		// orderNumber y createdAt nunca cambian después de la creación.
		order.OrderNumber = existing.OrderNumber
		order.CreatedAt = existing.CreatedAt
	}

	order.TotalValue = order.ComputeTotal()

	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete elimina por id; un id inexistente es un no-op benigno.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.orders.Delete(ctx, id)
}

// validateOrderInput aplica las reglas del formulario legado: al menos un
// servicio, datos de cliente y equipo obligatorios, cantidades y precios no
// negativos, estado conocido.
func validateOrderInput(in dto.SaveOrderRequest) error {
	if len(in.Services) == 0 {
		return domain.ErrEmptyOrder
	}
	if strings.TrimSpace(in.Client.Name) == "" {
		return fmt.Errorf("%w: nombre del cliente requerido", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Client.CNPJ) == "" {
		return fmt.Errorf("%w: CNPJ/CPF requerido", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Client.Phone) == "" {
		return fmt.Errorf("%w: teléfono requerido", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Client.Address) == "" {
		return fmt.Errorf("%w: dirección requerida", domain.ErrValidation)
	}
	if strings.TrimSpace(in.EquipmentName) == "" {
		return fmt.Errorf("%w: nombre del equipo requerido", domain.ErrValidation)
	}
	if !entity.ValidStatus(in.Status) {
		return fmt.Errorf("%w: estado desconocido %q", domain.ErrValidation, in.Status)
	}
	for _, s := range in.Services {
		if strings.TrimSpace(s.Description) == "" {
			return fmt.Errorf("%w: descripción de servicio requerida", domain.ErrValidation)
		}
		if s.Quantity.IsNegative() || s.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: cantidad y precio no pueden ser negativos", domain.ErrValidation)
		}
	}
	return nil
}

// nextOrderNumber genera "OS-" + 5 dígitos, reintentando hasta no chocar con
// un número ya usado (el número humano nunca puede duplicarse).
func (uc *OrderUseCase) nextOrderNumber(ctx context.Context) (string, error) {
	existing, err := uc.orders.List(ctx)
	if err != nil {
		return "", err
	}
	used := make(map[string]bool, len(existing))
	for _, o := range existing {
		used[o.OrderNumber] = true
	}
	for {
		candidate := fmt.Sprintf("OS-%d", 10000+rand.IntN(90000))
		if !used[candidate] {
			return candidate, nil
		}
	}
}
