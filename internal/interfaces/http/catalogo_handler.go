package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/application/usecase"
)

// CatalogoHandler expone los catálogos de tipos, tallas y colores. Los
// listados son de lectura general; crear elementos requiere el permiso de
// gestión de productos.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler de catálogos.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// ListTipos godoc
// @Summary      Listar tipos de producto
// @Tags         catalogos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CatalogoItemResponse
// @Router       /api/catalogos/tipos [get]
func (h *CatalogoHandler) ListTipos(c *fiber.Ctx) error {
	out, err := h.uc.ListTipos()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateTipo godoc
// @Summary      Crear tipo de producto
// @Tags         catalogos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CatalogoItemRequest  true  "nombre"
// @Success      201   {object}  dto.CatalogoItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogos/tipos [post]
func (h *CatalogoHandler) CreateTipo(c *fiber.Ctx) error {
	return h.crear(c, h.uc.CrearTipo)
}

// ListTallas godoc
// @Summary      Listar tallas
// @Tags         catalogos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CatalogoItemResponse
// @Router       /api/catalogos/tallas [get]
func (h *CatalogoHandler) ListTallas(c *fiber.Ctx) error {
	out, err := h.uc.ListTallas()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateTalla godoc
// @Summary      Crear talla
// @Tags         catalogos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CatalogoItemRequest  true  "nombre"
// @Success      201   {object}  dto.CatalogoItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogos/tallas [post]
func (h *CatalogoHandler) CreateTalla(c *fiber.Ctx) error {
	return h.crear(c, h.uc.CrearTalla)
}

// ListColores godoc
// @Summary      Listar colores
// @Tags         catalogos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CatalogoItemResponse
// @Router       /api/catalogos/colores [get]
func (h *CatalogoHandler) ListColores(c *fiber.Ctx) error {
	out, err := h.uc.ListColores()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateColor godoc
// @Summary      Crear color
// @Tags         catalogos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CatalogoItemRequest  true  "nombre"
// @Success      201   {object}  dto.CatalogoItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogos/colores [post]
func (h *CatalogoHandler) CreateColor(c *fiber.Ctx) error {
	return h.crear(c, h.uc.CrearColor)
}

func (h *CatalogoHandler) crear(c *fiber.Ctx, fn func(dto.CatalogoItemRequest) (*dto.CatalogoItemResponse, error)) error {
	var in dto.CatalogoItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := fn(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
