package repository

import (
	"context"

	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de servicio (DIP).
// La implementación vive en infrastructure.
//
// El orden de inserción de la colección se conserva: Save reemplaza en su
// posición cuando el id ya existe y agrega al final cuando no.
type OrderRepository interface {
	// List devuelve todas las órdenes en el orden en que están almacenadas.
	List(ctx context.Context) ([]entity.ServiceOrder, error)
	// Save hace upsert por id. El caller debe haber recalculado TotalValue
	// y UpdatedAt antes de llamar.
	Save(ctx context.Context, order entity.ServiceOrder) error
	// Delete elimina por id; si no existe es un no-op, nunca un error.
	Delete(ctx context.Context, id string) error
}
