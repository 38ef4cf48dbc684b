package entity

import (
	"strings"
	"time"
)

// Usuario representa una cuenta del sistema. El correo (normalizado a
// minúsculas) es el identificador de login; no existe username separado.
type Usuario struct {
	ID           string
	Nombre       string
	Apellido     string
	Correo       string // único, normalizado
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Rol          string // aprendiz, administrador, almacenista, despachador
	IsActive     bool
	IsStaff      bool // staff concede todos los permisos
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NombreCompleto retorna nombre y apellido concatenados.
func (u *Usuario) NombreCompleto() string {
	return strings.TrimSpace(u.Nombre + " " + u.Apellido)
}

// NormalizarCorreo aplica la normalización canónica del identificador de
// login: espacios fuera y minúsculas.
func NormalizarCorreo(correo string) string {
	return strings.ToLower(strings.TrimSpace(correo))
}
