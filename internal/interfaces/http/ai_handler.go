package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitormaquinas/os-master-api/internal/application/dto"
	"github.com/vitormaquinas/os-master-api/internal/application/usecase"
)

// AIHandler expone el optimizador de descripciones. Nunca devuelve error de
// negocio: si el modelo falla, responde el texto original.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler de AI.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// OptimizeDescription godoc
// @Summary      Mejorar una descripción de servicio
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.OptimizeDescriptionRequest  true  "descripción original"
// @Success      200   {object}  dto.OptimizeDescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/optimize-description [post]
func (h *AIHandler) OptimizeDescription(c *fiber.Ctx) error {
	var in dto.OptimizeDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out := h.uc.OptimizeDescription(c.UserContext(), in.Description)
	return c.JSON(dto.OptimizeDescriptionResponse{Description: out})
}
