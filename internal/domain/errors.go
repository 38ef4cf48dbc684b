package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrCorreoRegistrado    = errors.New("el correo ya está registrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrRolDesconocido      = errors.New("rol desconocido")
	ErrCredenciales        = errors.New("credenciales inválidas")
	ErrForbidden           = errors.New("acceso denegado")
	ErrSuperusuarioExiste  = errors.New("ya existe un superusuario")
	ErrStockInsuficiente   = errors.New("stock insuficiente")
	ErrEstadoSolicitud     = errors.New("transición de estado no permitida")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrStoreNoDisponible   = errors.New("almacén de datos no disponible")
)
