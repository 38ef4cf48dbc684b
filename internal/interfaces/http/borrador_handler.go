package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/application/usecase"
)

// BorradorHandler maneja los borradores de solicitud del aprendiz autenticado.
type BorradorHandler struct {
	uc *usecase.BorradorUseCase
}

// NewBorradorHandler construye el handler de borradores.
func NewBorradorHandler(uc *usecase.BorradorUseCase) *BorradorHandler {
	return &BorradorHandler{uc: uc}
}

// Create godoc
// @Summary      Guardar borrador de solicitud
// @Tags         borradores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.BorradorRequest  true  "campos parciales de la solicitud"
// @Success      201   {object}  dto.BorradorResponse
// @Router       /api/borradores [post]
func (h *BorradorHandler) Create(c *fiber.Ctx) error {
	var in dto.BorradorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Guardar(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar borradores propios
// @Tags         borradores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.BorradorResponse
// @Router       /api/borradores [get]
func (h *BorradorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar borrador propio
// @Tags         borradores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.BorradorRequest  true  "campos parciales de la solicitud"
// @Success      200   {object}  dto.BorradorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/borradores/{id} [put]
func (h *BorradorHandler) Update(c *fiber.Ctx) error {
	var in dto.BorradorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar borrador propio
// @Tags         borradores
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del borrador"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/borradores/{id} [delete]
func (h *BorradorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok", Message: "borrador eliminado"})
}
