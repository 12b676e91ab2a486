package ports

import "context"

// SyncVault puerto de salida hacia el almacén remoto de snapshots: un blob
// clave-valor direccionado por el código de sincronización del operador.
// Semántica PUT/GET sin versionado: Put sobreescribe incondicionalmente
// (last-writer-wins). Es deliberadamente un reemplazo de dataset completo para
// un único operador moviendo datos entre sus máquinas, no un protocolo de
// reconciliación multi-escritor; un protocolo con detección de conflictos
// podría sustituir el adaptador sin tocar el Record Store.
type SyncVault interface {
	// Put escribe el snapshot serializado en el slot del código.
	Put(ctx context.Context, code string, payload []byte) error
	// Get lee el slot; devuelve domain.ErrNotFound si el código no existe.
	Get(ctx context.Context, code string) ([]byte, error)
}
