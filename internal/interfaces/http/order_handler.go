package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/vitormaquinas/os-master-api/internal/application/analytics"
	"github.com/vitormaquinas/os-master-api/internal/application/dto"
	"github.com/vitormaquinas/os-master-api/internal/application/usecase"
	"github.com/vitormaquinas/os-master-api/internal/domain"
)

// OrderHandler maneja el CRUD de órdenes de servicio, su listado filtrado y la
// impresión.
type OrderHandler struct {
	uc      *usecase.OrderUseCase
	printUC *usecase.PrintOrderUseCase
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(uc *usecase.OrderUseCase, printUC *usecase.PrintOrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, printUC: printUC}
}

// List godoc
// @Summary      Listar órdenes (filtradas y ordenadas)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        q       query  string  false  "búsqueda por cliente, número de orden, equipo o CNPJ"
// @Param        status  query  string  false  "estado exacto o 'all'"
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filtered := analytics.FilterOrders(orders, c.Query("q"), c.Query("status"))
	return c.JSON(dto.OrderListResponse{Items: filtered, Total: len(filtered)})
}

// GetByID godoc
// @Summary      Obtener una orden
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la orden"
// @Success      200  {object}  entity.ServiceOrder
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}

// Create godoc
// @Summary      Crear orden de servicio
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveOrderRequest  true  "datos de la orden (sin totalValue, se recalcula)"
// @Success      201   {object}  entity.ServiceOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = "" // creación: el id lo genera el servidor
	order, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return saveOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// Update godoc
// @Summary      Editar orden de servicio
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "id de la orden"
// @Param        body  body  dto.SaveOrderRequest  true  "datos de la orden"
// @Success      200   {object}  entity.ServiceOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	order, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return saveOrderError(c, err)
	}
	return c.JSON(order)
}

// Delete godoc
// @Summary      Eliminar orden de servicio
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la orden"
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// Print godoc
// @Summary      Imprimir orden (PDF con las dos vías)
// @Tags         orders
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/print [get]
func (h *OrderHandler) Print(c *fiber.Ctx) error {
	data, err := h.printUC.Print(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="ordem_%s.pdf"`, c.Params("id")))
	return c.Send(data)
}

// saveOrderError mapea los errores de guardado a su status HTTP.
func saveOrderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyOrder):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_ORDER", Message: "la orden debe tener al menos un servicio"})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
