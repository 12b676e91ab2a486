package syncvault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vitormaquinas/os-master-api/internal/application/ports"
	"github.com/vitormaquinas/os-master-api/internal/domain"
)

var _ ports.SyncVault = (*RedisVault)(nil)

// snapshotTTL los slots expiran solos: el vault es un buzón de tránsito entre
// máquinas, no un respaldo de larga duración.
const snapshotTTL = 30 * 24 * time.Hour

// RedisVault implementa el puerto sobre un Redis propio, para despliegues que
// no quieren depender del almacén HTTP público.
type RedisVault struct {
	client *redis.Client
}

// NewRedisVault construye el adaptador.
func NewRedisVault(addr, password string, db int) *RedisVault {
	return &RedisVault{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Put escribe el snapshot serializado en la clave del código.
func (v *RedisVault) Put(ctx context.Context, code string, payload []byte) error {
	if err := v.client.Set(ctx, slotName(code), payload, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("sync: escribir slot en redis: %w", err)
	}
	return nil
}

// Get lee la clave del código; redis.Nil se traduce a domain.ErrNotFound.
func (v *RedisVault) Get(ctx context.Context, code string) ([]byte, error) {
	payload, err := v.client.Get(ctx, slotName(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sync: leer slot de redis: %w", err)
	}
	return payload, nil
}

// Close libera la conexión.
func (v *RedisVault) Close() error {
	return v.client.Close()
}
