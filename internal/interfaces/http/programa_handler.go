package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/application/usecase"
)

// ProgramaHandler maneja centros de formación y programas.
type ProgramaHandler struct {
	uc *usecase.ProgramaUseCase
}

// NewProgramaHandler construye el handler de programas.
func NewProgramaHandler(uc *usecase.ProgramaUseCase) *ProgramaHandler {
	return &ProgramaHandler{uc: uc}
}

// CreateCentro godoc
// @Summary      Crear centro de formación
// @Tags         programas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCentroRequest  true  "nombre"
// @Success      201   {object}  dto.CentroResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/centros [post]
func (h *ProgramaHandler) CreateCentro(c *fiber.Ctx) error {
	var in dto.CreateCentroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearCentro(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCentros godoc
// @Summary      Listar centros de formación
// @Tags         programas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CentroResponse
// @Router       /api/centros [get]
func (h *ProgramaHandler) ListCentros(c *fiber.Ctx) error {
	out, err := h.uc.ListCentros()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreatePrograma godoc
// @Summary      Crear programa de formación
// @Tags         programas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProgramaRequest  true  "nombre, centro_id"
// @Success      201   {object}  dto.ProgramaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/programas [post]
func (h *ProgramaHandler) CreatePrograma(c *fiber.Ctx) error {
	var in dto.CreateProgramaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearPrograma(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProgramas godoc
// @Summary      Listar programas, opcionalmente por centro
// @Tags         programas
// @Produce      json
// @Security     BearerAuth
// @Param        centro_id  query  string  false  "filtrar por centro"
// @Success      200  {array}  dto.ProgramaResponse
// @Router       /api/programas [get]
func (h *ProgramaHandler) ListProgramas(c *fiber.Ctx) error {
	out, err := h.uc.ListProgramas(c.Query("centro_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
