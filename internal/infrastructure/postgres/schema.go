package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea la tabla de colecciones si no existe y siembra las cuatro
// claves con documentos vacíos, de modo que el read-modify-write con FOR UPDATE
// siempre encuentre una fila que bloquear.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS collections (
			key        TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("crear tabla collections: %w", err)
	}

	seeds := map[string]string{
		keyOrders:   `[]`,
		keyUsers:    `[]`,
		keySettings: `{}`,
		keySession:  `{}`,
	}
	for key, payload := range seeds {
		_, err := pool.Exec(ctx,
			`INSERT INTO collections (key, payload) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
			key, payload,
		)
		if err != nil {
			return fmt.Errorf("sembrar colección %s: %w", key, err)
		}
	}
	return nil
}
