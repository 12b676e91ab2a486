package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/vitormaquinas/os-master-api/internal/application/backup"
	"github.com/vitormaquinas/os-master-api/internal/application/dto"
	"github.com/vitormaquinas/os-master-api/internal/domain"
)

// BackupHandler exporta e importa el dataset completo como archivo JSON.
type BackupHandler struct {
	uc *backup.BackupUseCase
}

// NewBackupHandler construye el handler de respaldos.
func NewBackupHandler(uc *backup.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Descargar respaldo completo
// @Tags         backup
// @Produce      json
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	payload, filename, err := h.uc.Export(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(payload)
}

// Import godoc
// @Summary      Restaurar un respaldo
// @Tags         backup
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  entity.Snapshot  true  "documento de respaldo"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	if err := h.uc.Import(c.UserContext(), c.Body()); err != nil {
		if errors.Is(err, domain.ErrBadSnapshot) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_SNAPSHOT", Message: "el documento no es un respaldo válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}
