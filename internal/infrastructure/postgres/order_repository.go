package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre el documento de
// órdenes. Cada operación reescribe la colección completa bajo lock de fila.
type OrderRepo struct {
	store *collectionStore
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{store: &collectionStore{pool: pool}}
}

// List devuelve todas las órdenes en el orden almacenado.
func (r *OrderRepo) List(ctx context.Context) ([]entity.ServiceOrder, error) {
	orders := []entity.ServiceOrder{}
	if err := r.store.load(ctx, keyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Save hace upsert por id conservando la posición de la orden en la colección.
func (r *OrderRepo) Save(ctx context.Context, order entity.ServiceOrder) error {
	return r.store.update(ctx, keyOrders, func(current []byte) (any, error) {
		orders := []entity.ServiceOrder{}
		decodeOrZero(keyOrders, current, &orders)
		for i := range orders {
			if orders[i].ID == order.ID {
				orders[i] = order
				return orders, nil
			}
		}
		return append(orders, order), nil
	})
}

// Delete elimina por id; si no existe no hace nada.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, keyOrders, func(current []byte) (any, error) {
		orders := []entity.ServiceOrder{}
		decodeOrZero(keyOrders, current, &orders)
		out := orders[:0]
		for _, o := range orders {
			if o.ID != id {
				out = append(out, o)
			}
		}
		return out, nil
	})
}
