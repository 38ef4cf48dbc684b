package usecase

import (
	"time"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/rbac"
	"github.com/joan632/DotappSena/internal/domain/repository"
	"github.com/joan632/DotappSena/pkg/logger"
)

// UsuarioUseCase operaciones administrativas sobre cuentas: listar, activar,
// desactivar y cambiar de rol. No hay borrado físico de cuentas; desactivar
// es la operación terminal.
type UsuarioUseCase struct {
	usuarios repository.UsuarioRepository
	log      *logger.Logger
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(usuarios repository.UsuarioRepository, log *logger.Logger) *UsuarioUseCase {
	return &UsuarioUseCase{usuarios: usuarios, log: log}
}

// List lista usuarios con paginación.
func (uc *UsuarioUseCase) List(page dto.PageRequest) ([]*dto.UsuarioResponse, error) {
	page.DefaultPage()
	list, err := uc.usuarios.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, usuarioToResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	return usuarioToResponse(u), nil
}

// CambiarActivo activa o desactiva una cuenta.
func (uc *UsuarioUseCase) CambiarActivo(id string, activo bool) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	u.IsActive = activo
	u.UpdatedAt = time.Now()
	if err := uc.usuarios.Update(u); err != nil {
		return nil, err
	}
	uc.log.Auditoria("usuario_activo_cambiado", u.ID).Bool("activo", activo).Send()
	return usuarioToResponse(u), nil
}

// CambiarRol asigna un rol del catálogo cerrado a la cuenta.
func (uc *UsuarioUseCase) CambiarRol(id, rol string) (*dto.UsuarioResponse, error) {
	if !rbac.RolValido(rol) {
		return nil, domain.ErrRolDesconocido
	}
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	u.Rol = rol
	u.UpdatedAt = time.Now()
	if err := uc.usuarios.Update(u); err != nil {
		return nil, err
	}
	uc.log.Auditoria("usuario_rol_cambiado", u.ID).Str("rol", rol).Send()
	return usuarioToResponse(u), nil
}

func usuarioToResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Apellido:  u.Apellido,
		Correo:    u.Correo,
		Rol:       u.Rol,
		IsActive:  u.IsActive,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
