package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/joan632/DotappSena/internal/application/auth"
	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/pkg/resettoken"
)

// AuthHandler maneja registro, login, perfil y recuperación de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar aprendiz
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombre, apellido, correo, password"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Apellido == "" || in.Correo == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, apellido, correo y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	if in.Password != in.ConfirmarPassword {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las contraseñas no coinciden"})
	}
	// El registro público siempre crea aprendices; los otros roles los
	// asigna un administrador.
	in.Rol = ""
	usuario, err := h.uc.Registrar(in)
	if err != nil {
		if errors.Is(err, domain.ErrCorreoRegistrado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el correo ya está registrado"})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "correo, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Correo == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "correo y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrCredenciales) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva"})
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	usuario, err := h.uc.Me(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(usuario)
}

// CambiarPassword godoc
// @Summary      Cambiar contraseña propia
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CambiarPasswordRequest  true  "password, confirmar_password"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password [put]
func (h *AuthHandler) CambiarPassword(c *fiber.Ctx) error {
	var in dto.CambiarPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Password != in.ConfirmarPassword {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las contraseñas no coinciden"})
	}
	if err := h.uc.CambiarPassword(GetUserID(c), in.Password); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok", Message: "contraseña actualizada"})
}

// SolicitarReset godoc
// @Summary      Solicitar recuperación de contraseña
// @Description  La respuesta es la misma exista o no el correo.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetRequest  true  "correo"
// @Success      200   {object}  dto.StatusResponse
// @Router       /api/auth/password-reset [post]
func (h *AuthHandler) SolicitarReset(c *fiber.Ctx) error {
	var in dto.ResetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Correo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "correo es requerido"})
	}
	if err := h.uc.SolicitarReset(in); err != nil {
		return respondError(c, err)
	}
	// Respuesta fija: no revela si el correo está registrado.
	return c.JSON(dto.StatusResponse{Status: "ok", Message: "si el correo está registrado, recibirás un enlace de recuperación"})
}

// ConfirmarReset godoc
// @Summary      Confirmar recuperación con el token del correo
// @Description  Cualquier token inválido, manipulado o caducado produce la misma respuesta.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetConfirmRequest  true  "token, password, confirmar_password"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmarReset(c *fiber.Ctx) error {
	var in dto.ResetConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Token == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token y password son requeridos"})
	}
	if in.Password != in.ConfirmarPassword {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las contraseñas no coinciden"})
	}
	if err := h.uc.ConfirmarReset(in); err != nil {
		if errors.Is(err, resettoken.ErrInvalido) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RESET_TOKEN", Message: "enlace inválido o caducado"})
		}
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok", Message: "contraseña restablecida"})
}
