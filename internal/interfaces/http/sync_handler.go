package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vitormaquinas/os-master-api/internal/application/dto"
	appsync "github.com/vitormaquinas/os-master-api/internal/application/sync"
	"github.com/vitormaquinas/os-master-api/internal/domain"
)

// SyncHandler expone el push/pull del dataset contra el vault remoto.
type SyncHandler struct {
	uc *appsync.SyncUseCase
}

// NewSyncHandler construye el handler de sincronización.
func NewSyncHandler(uc *appsync.SyncUseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// GenerateCode godoc
// @Summary      Generar código de sincronización
// @Tags         sync
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SyncCodeResponse
// @Router       /api/sync/code [post]
func (h *SyncHandler) GenerateCode(c *fiber.Ctx) error {
	code, err := h.uc.GenerateCode(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SyncCodeResponse{Code: code})
}

// CurrentCode godoc
// @Summary      Código recordado del último push/pull
// @Tags         sync
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SyncCodeResponse
// @Router       /api/sync/code [get]
func (h *SyncHandler) CurrentCode(c *fiber.Ctx) error {
	code, err := h.uc.CurrentCode(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SyncCodeResponse{Code: code})
}

// Push godoc
// @Summary      Empujar el dataset completo al slot remoto
// @Tags         sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SyncRequest  true  "código de sincronización"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/sync/push [post]
func (h *SyncHandler) Push(c *fiber.Ctx) error {
	var in dto.SyncRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Push(c.UserContext(), in.Code); err != nil {
		return syncError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// Pull godoc
// @Summary      Traer el dataset del slot remoto y reemplazar el local
// @Tags         sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SyncRequest  true  "código de sincronización"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/sync/pull [post]
func (h *SyncHandler) Pull(c *fiber.Ctx) error {
	var in dto.SyncRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Pull(c.UserContext(), in.Code); err != nil {
		return syncError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// syncError mapea los errores de sincronización a su status HTTP.
func syncError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CODE_NOT_FOUND", Message: "el código no existe en el almacén remoto"})
	case errors.Is(err, domain.ErrBadSnapshot):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BAD_SNAPSHOT", Message: "el documento remoto no es un snapshot válido"})
	case errors.Is(err, domain.ErrSyncFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SYNC_FAILED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
