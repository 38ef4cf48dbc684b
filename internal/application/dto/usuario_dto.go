package dto

import "time"

// RegisterRequest entrada para registro de aprendices (password en texto, se
// hashea en el caso de uso). Rol vacío = aprendiz.
type RegisterRequest struct {
	Nombre            string `json:"nombre" validate:"required,min=1,max=255"`
	Apellido          string `json:"apellido" validate:"required,min=1,max=255"`
	Correo            string `json:"correo" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	ConfirmarPassword string `json:"confirmar_password" validate:"required,eqfield=Password"`
	Rol               string `json:"rol" validate:"omitempty,oneof=aprendiz administrador almacenista despachador"`
}

// UsuarioResponse salida de un usuario (nunca incluye el hash).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	Correo    string    `json:"correo"`
	Rol       string    `json:"rol"`
	IsActive  bool      `json:"is_active"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT de sesión.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// ResetRequest entrada para solicitar la recuperación de contraseña.
type ResetRequest struct {
	Correo string `json:"correo" validate:"required,email"`
}

// ResetConfirmRequest entrada para confirmar la recuperación con el token.
type ResetConfirmRequest struct {
	Token             string `json:"token" validate:"required"`
	Password          string `json:"password" validate:"required,min=8"`
	ConfirmarPassword string `json:"confirmar_password" validate:"required,eqfield=Password"`
}

// CambiarPasswordRequest entrada para que el usuario autenticado cambie su contraseña.
type CambiarPasswordRequest struct {
	Password          string `json:"password" validate:"required,min=8"`
	ConfirmarPassword string `json:"confirmar_password" validate:"required,eqfield=Password"`
}

// CambiarRolRequest entrada para que un administrador cambie el rol de una cuenta.
type CambiarRolRequest struct {
	Rol string `json:"rol" validate:"required,oneof=aprendiz administrador almacenista despachador"`
}
