package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
	"github.com/vitormaquinas/os-master-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo exporta e importa el dataset completo. La importación escribe
// todas las colecciones presentes en una sola transacción: o se aplican todas
// o ninguna.
type SnapshotRepo struct {
	pool  *pgxpool.Pool
	store *collectionStore
}

// NewSnapshotRepository construye el adaptador de exportación/importación.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, store: &collectionStore{pool: pool}}
}

// ExportAll devuelve órdenes + usuarios + configuración. Las colecciones nunca
// son nil: un store vacío exporta listas vacías y el placeholder por defecto.
func (r *SnapshotRepo) ExportAll(ctx context.Context) (entity.Snapshot, error) {
	orders := []entity.ServiceOrder{}
	if err := r.store.load(ctx, keyOrders, &orders); err != nil {
		return entity.Snapshot{}, err
	}
	users := []entity.User{}
	if err := r.store.load(ctx, keyUsers, &users); err != nil {
		return entity.Snapshot{}, err
	}
	var settings entity.CompanySettings
	if err := r.store.load(ctx, keySettings, &settings); err != nil {
		return entity.Snapshot{}, err
	}
	if settings.Name == "" {
		settings = entity.DefaultSettings()
	}
	return entity.Snapshot{Orders: orders, Users: users, Settings: &settings}, nil
}

// ImportAll reemplaza cada colección presente (no nil) del snapshot dentro de
// una única transacción; las ausentes quedan intactas.
func (r *SnapshotRepo) ImportAll(ctx context.Context, snap entity.Snapshot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("abrir transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	write := func(key string, value any) error {
		payload, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("serializar colección %s: %w", key, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO collections (key, payload, updated_at) VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
			key, payload,
		)
		if err != nil {
			return fmt.Errorf("escribir colección %s: %w", key, err)
		}
		return nil
	}

	if snap.Orders != nil {
		if err := write(keyOrders, snap.Orders); err != nil {
			return err
		}
	}
	if snap.Users != nil {
		if err := write(keyUsers, snap.Users); err != nil {
			return err
		}
	}
	if snap.Settings != nil {
		if err := write(keySettings, snap.Settings); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
