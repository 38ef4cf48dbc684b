package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	db Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(db Querier) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const usuarioCols = `id, nombre, apellido, correo, password_hash, rol, is_active, is_staff, created_at, updated_at`

// Create persiste un nuevo usuario. La unicidad del correo la garantiza el
// constraint de la tabla; una violación se mapea a domain.ErrCorreoRegistrado.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Apellido, u.Correo, u.PasswordHash, u.Rol,
		u.IsActive, u.IsStaff, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCorreoRegistrado
		}
		return mapStoreErr("insert usuario", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Retorna (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.uno(`SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id)
}

// GetByCorreo obtiene un usuario por correo normalizado. Retorna (nil, nil) si no existe.
func (r *UsuarioRepo) GetByCorreo(correo string) (*entity.Usuario, error) {
	return r.uno(`SELECT `+usuarioCols+` FROM usuarios WHERE correo = $1 LIMIT 1`, correo)
}

func (r *UsuarioRepo) uno(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.Correo, &u.PasswordHash, &u.Rol,
		&u.IsActive, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreErr("get usuario", err)
	}
	return &u, nil
}

// Update actualiza los campos mutables de un usuario.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET nombre = $2, apellido = $3, correo = $4, password_hash = $5,
		    rol = $6, is_active = $7, is_staff = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Apellido, u.Correo, u.PasswordHash,
		u.Rol, u.IsActive, u.IsStaff, u.UpdatedAt,
	)
	if err != nil {
		return mapStoreErr("update usuario", err)
	}
	return nil
}

// List lista usuarios con paginación, los más recientes primero.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT ` + usuarioCols + `
		FROM usuarios ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, mapStoreErr("list usuarios", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Nombre, &u.Apellido, &u.Correo, &u.PasswordHash, &u.Rol,
			&u.IsActive, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, mapStoreErr("scan usuario", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ExisteSuperusuario indica si ya hay una cuenta staff con rol administrador.
func (r *UsuarioRepo) ExisteSuperusuario() (bool, error) {
	var existe bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM usuarios WHERE is_staff AND rol = 'administrador')`,
	).Scan(&existe)
	if err != nil {
		return false, mapStoreErr("existe superusuario", err)
	}
	return existe, nil
}
