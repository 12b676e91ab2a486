// Package syncvault adaptadores del vault remoto de snapshots: el almacén
// clave-valor HTTP que usaba el sistema legado y un backend Redis propio.
// Ambos comparten el mismo esquema de clave ("ospro-" + código), así un
// snapshot empujado por una instancia con un backend es legible por otra con
// el mismo backend sin traducción.
package syncvault

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vitormaquinas/os-master-api/internal/application/ports"
	"github.com/vitormaquinas/os-master-api/internal/domain"
)

var _ ports.SyncVault = (*HTTPVault)(nil)

// slotName clave del slot remoto para un código de sincronización.
func slotName(code string) string {
	return "ospro-" + code
}

// HTTPVault implementa el puerto contra un almacén clave-valor HTTP genérico:
// POST <base>/<slot> escribe el blob, GET <base>/<slot> lo lee, 404 significa
// código inexistente.
type HTTPVault struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPVault construye el adaptador. baseURL es la raíz del almacén, sin
// slash final.
func NewHTTPVault(baseURL string) *HTTPVault {
	return &HTTPVault{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Put escribe el snapshot serializado en el slot del código.
func (v *HTTPVault) Put(ctx context.Context, code string, payload []byte) error {
	url := v.baseURL + "/" + slotName(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("sync: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sync: escribir slot remoto: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sync: el almacén remoto respondió HTTP %d", resp.StatusCode)
	}
	return nil
}

// Get lee el slot del código; 404 se traduce a domain.ErrNotFound.
func (v *HTTPVault) Get(ctx context.Context, code string) ([]byte, error) {
	url := v.baseURL + "/" + slotName(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("sync: crear request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sync: leer slot remoto: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sync: el almacén remoto respondió HTTP %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("sync: leer cuerpo de respuesta: %w", err)
	}
	return payload, nil
}
