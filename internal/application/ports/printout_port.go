package ports

import (
	"context"

	"github.com/vitormaquinas/os-master-api/internal/domain/printout"
)

// PrintoutGenerator puerto de salida para materializar el documento imprimible
// (las dos vías) en un formato físico. La implementación actual genera PDF.
type PrintoutGenerator interface {
	Generate(ctx context.Context, doc printout.Document) ([]byte, error)
}
