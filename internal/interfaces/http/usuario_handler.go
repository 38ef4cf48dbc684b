package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/application/usecase"
)

// UsuarioHandler operaciones administrativas sobre cuentas.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler de usuarios.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios (administrador)
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario (administrador)
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Activar godoc
// @Summary      Activar cuenta (administrador)
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/activar [post]
func (h *UsuarioHandler) Activar(c *fiber.Ctx) error {
	out, err := h.uc.CambiarActivo(c.Params("id"), true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Desactivar godoc
// @Summary      Desactivar cuenta (administrador)
// @Description  Una cuenta desactivada no puede iniciar sesión ni recuperar contraseña.
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/desactivar [post]
func (h *UsuarioHandler) Desactivar(c *fiber.Ctx) error {
	out, err := h.uc.CambiarActivo(c.Params("id"), false)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CambiarRol godoc
// @Summary      Cambiar rol de una cuenta (administrador)
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.CambiarRolRequest  true  "rol"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/rol [put]
func (h *UsuarioHandler) CambiarRol(c *fiber.Ctx) error {
	var in dto.CambiarRolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CambiarRol(c.Params("id"), in.Rol)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
