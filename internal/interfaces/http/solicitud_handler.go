package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/application/usecase"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/rbac"
)

// SolicitudHandler maneja el ciclo de vida de las solicitudes de uniforme.
type SolicitudHandler struct {
	uc *usecase.SolicitudUseCase
}

// NewSolicitudHandler construye el handler de solicitudes.
func NewSolicitudHandler(uc *usecase.SolicitudUseCase) *SolicitudHandler {
	return &SolicitudHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud (aprendiz)
// @Description  Reserva el stock del producto en la misma transacción.
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSolicitudRequest  true  "producto_id, cantidad, centro_id, programa_id, ficha"
// @Success      201   {object}  dto.SolicitudResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *SolicitudHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Listar solicitudes propias (aprendiz)
// @Tags         solicitudes
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.SolicitudResponse
// @Router       /api/solicitudes/mias [get]
func (h *SolicitudHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.ListByAprendiz(GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// List godoc
// @Summary      Listar solicitudes (personal operativo)
// @Tags         solicitudes
// @Produce      json
// @Security     BearerAuth
// @Param        estado  query  string  false  "pendiente | aprobada | despachada | entregada | rechazada | cancelada"
// @Param        limit   query  int     false  "máximo de filas (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.SolicitudResponse
// @Router       /api/solicitudes [get]
func (h *SolicitudHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.List(c.Query("estado"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener solicitud
// @Tags         solicitudes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id} [get]
func (h *SolicitudHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	// Un aprendiz solo ve sus propias solicitudes.
	if !GetStaff(c) && GetRol(c) == rbac.RolAprendiz && out.AprendizID != GetUserID(c) {
		return respondError(c, domain.ErrForbidden)
	}
	return c.JSON(out)
}

// Aprobar godoc
// @Summary      Aprobar solicitud pendiente (almacenista)
// @Tags         solicitudes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/aprobar [post]
func (h *SolicitudHandler) Aprobar(c *fiber.Ctx) error {
	out, err := h.uc.Aprobar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Rechazar godoc
// @Summary      Rechazar solicitud pendiente, devolviendo stock (almacenista)
// @Tags         solicitudes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/rechazar [post]
func (h *SolicitudHandler) Rechazar(c *fiber.Ctx) error {
	out, err := h.uc.Rechazar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Despachar godoc
// @Summary      Despachar solicitud aprobada (despachador)
// @Tags         solicitudes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/despachar [post]
func (h *SolicitudHandler) Despachar(c *fiber.Ctx) error {
	out, err := h.uc.Despachar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Entregar godoc
// @Summary      Marcar solicitud despachada como entregada (despachador)
// @Tags         solicitudes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/entregar [post]
func (h *SolicitudHandler) Entregar(c *fiber.Ctx) error {
	out, err := h.uc.Entregar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancelar godoc
// @Summary      Cancelar solicitud pendiente propia (aprendiz)
// @Tags         solicitudes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/cancelar [post]
func (h *SolicitudHandler) Cancelar(c *fiber.Ctx) error {
	out, err := h.uc.Cancelar(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
