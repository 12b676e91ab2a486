package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vitormaquinas/os-master-api/internal/application/ports"
)

// optimizeTimeout tope por llamada al LLM; las latencias externas no deben
// bloquear los goroutines del servidor.
const optimizeTimeout = 10 * time.Second

// AIUseCase orquesta la mejora de descripciones de servicio asistida por IA.
//
// Contrato de degradación: ante CUALQUIER fallo del colaborador (API key sin
// configurar, timeout, respuesta malformada) se devuelve el texto original sin
// modificar. Un guardado nunca puede fallar por culpa de este servicio.
type AIUseCase struct {
	optimizer ports.DescriptionOptimizer
}

// NewAIUseCase construye el caso de uso inyectando el puerto.
func NewAIUseCase(optimizer ports.DescriptionOptimizer) *AIUseCase {
	return &AIUseCase{optimizer: optimizer}
}

// OptimizeDescription devuelve la descripción mejorada, o la original si el
// colaborador falla o devuelve vacío. Nunca retorna error.
func (uc *AIUseCase) OptimizeDescription(ctx context.Context, description string) string {
	if strings.TrimSpace(description) == "" {
		return description
	}

	ctx, cancel := context.WithTimeout(ctx, optimizeTimeout)
	defer cancel()

	improved, err := uc.optimizer.Optimize(ctx, description)
	if err != nil {
		log.Warn().Err(err).Msg("optimizador de descripciones falló; se conserva el texto original")
		return description
	}
	if strings.TrimSpace(improved) == "" {
		return description
	}
	return improved
}
