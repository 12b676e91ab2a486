package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Claves de las colecciones persistidas. Son las claves del almacén del
// sistema legado; conservarlas hace triviales las migraciones de datos.
const (
	keyOrders   = "os_master_orders"
	keyUsers    = "os_master_users"
	keySettings = "os_master_settings"
	keySession  = "os_master_session"
)

// collectionStore acceso compartido a la tabla de documentos. Todos los
// adaptadores de este paquete delegan aquí.
type collectionStore struct {
	pool *pgxpool.Pool
}

// load lee el documento de una colección y lo deserializa en out. Una clave
// ausente o un payload malformado dejan out con su valor cero: el store nunca
// convierte datos corruptos en un fallo duro, solo lo registra.
func (s *collectionStore) load(ctx context.Context, key string, out any) error {
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload FROM collections WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("leer colección %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		log.Warn().Err(err).Str("collection", key).Msg("payload malformado, se usa colección vacía")
	}
	return nil
}

// store reemplaza el documento completo de una colección.
func (s *collectionStore) store(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar colección %s: %w", key, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO collections (key, payload, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		key, payload,
	)
	if err != nil {
		return fmt.Errorf("escribir colección %s: %w", key, err)
	}
	return nil
}

// update ejecuta un read-modify-write del documento bajo FOR UPDATE, dentro de
// una transacción. fn recibe el payload actual (o nil si la fila no existe,
// cosa que EnsureSchema evita sembrando las claves) y devuelve el documento a
// escribir. Dos guardados concurrentes de la misma colección se serializan en
// el lock de fila.
func (s *collectionStore) update(ctx context.Context, key string, fn func(current []byte) (any, error)) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("abrir transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	var payload []byte
	err = tx.QueryRow(ctx, `SELECT payload FROM collections WHERE key = $1 FOR UPDATE`, key).Scan(&payload)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("bloquear colección %s: %w", key, err)
	}

	next, err := fn(payload)
	if err != nil {
		return err
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("serializar colección %s: %w", key, err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO collections (key, payload, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("escribir colección %s: %w", key, err)
	}
	return tx.Commit(ctx)
}

// decodeOrZero deserializa payload en out tolerando payloads vacíos o
// malformados (out queda con su valor cero).
func decodeOrZero(key string, payload []byte, out any) {
	if len(payload) == 0 {
		return
	}
	if err := json.Unmarshal(payload, out); err != nil {
		log.Warn().Err(err).Str("collection", key).Msg("payload malformado, se usa colección vacía")
	}
}
