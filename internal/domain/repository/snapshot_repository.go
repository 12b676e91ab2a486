package repository

import (
	"context"

	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

// SnapshotRepository puerto para exportar/importar el dataset completo.
type SnapshotRepository interface {
	// ExportAll devuelve órdenes + usuarios + configuración. Las colecciones
	// exportadas nunca son nil.
	ExportAll(ctx context.Context) (entity.Snapshot, error)
	// ImportAll reemplaza cada colección presente en el snapshot dentro de una
	// sola transacción; las claves ausentes (nil) dejan la colección local
	// intacta. Nunca se aplica a medias.
	ImportAll(ctx context.Context, snap entity.Snapshot) error
}
