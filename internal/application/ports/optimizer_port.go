package ports

import "context"

// DescriptionOptimizer puerto de salida hacia el servicio externo que mejora
// la redacción de una descripción de servicio. Cualquier adaptador (Gemini,
// otro LLM, mock) debe implementar esta interfaz; la aplicación solo conoce
// este contrato.
//
// El adaptador puede fallar; es el caso de uso quien garantiza la degradación
// (devolver el texto original) para que un guardado nunca falle por este
// colaborador.
type DescriptionOptimizer interface {
	// Optimize devuelve la descripción mejorada. El contexto debe llevar un
	// timeout para no bloquear llamadas externas.
	Optimize(ctx context.Context, description string) (string, error)
}
