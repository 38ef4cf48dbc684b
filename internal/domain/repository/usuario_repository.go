package repository

import "github.com/joan632/DotappSena/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Los métodos Get* retornan (nil, nil) cuando no hay fila.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByCorreo(correo string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	List(limit, offset int) ([]*entity.Usuario, error)
	// ExisteSuperusuario indica si ya hay una cuenta staff administradora.
	// Solo puede existir una (la del comando setup_admin).
	ExisteSuperusuario() (bool, error)
}
