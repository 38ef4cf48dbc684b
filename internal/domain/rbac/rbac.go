// Package rbac implementa la autoridad de roles: un catálogo cerrado e
// inmutable que mapea cada rol del sistema a su conjunto de permisos.
//
// Los permisos por rol se definen en tiempo de despliegue (datos de paquete),
// no son editables en runtime; eso mantiene las decisiones de autorización
// auditables y libres de efectos secundarios.
package rbac

import (
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
)

// Roles válidos del sistema. El conjunto es cerrado: renombrar un rol es una
// migración, no una operación de runtime.
const (
	RolAprendiz      = "aprendiz"
	RolAdministrador = "administrador"
	RolAlmacenista   = "almacenista"
	RolDespachador   = "despachador"
)

// Permiso identifica una acción privilegiada.
type Permiso string

// Permisos reconocidos.
const (
	PermSolicitudesCrear     Permiso = "solicitudes.crear"
	PermSolicitudesCancelar  Permiso = "solicitudes.cancelar"
	PermSolicitudesAprobar   Permiso = "solicitudes.aprobar"
	PermSolicitudesDespachar Permiso = "solicitudes.despachar"
	PermProductosVer         Permiso = "productos.ver"
	PermProductosGestionar   Permiso = "productos.gestionar"
	PermUsuariosGestionar    Permiso = "usuarios.gestionar"
	PermProgramasGestionar   Permiso = "programas.gestionar"
	PermBorradoresGestionar  Permiso = "borradores.gestionar"
	PermReportesVer          Permiso = "reportes.ver"
)

// permisosPorRol es el catálogo cerrado rol → permisos.
var permisosPorRol = map[string][]Permiso{
	RolAprendiz: {
		PermSolicitudesCrear,
		PermSolicitudesCancelar,
		PermProductosVer,
		PermBorradoresGestionar,
	},
	RolAlmacenista: {
		PermSolicitudesAprobar,
		PermProductosVer,
		PermProductosGestionar,
		PermReportesVer,
	},
	RolDespachador: {
		PermSolicitudesDespachar,
		PermProductosVer,
		PermReportesVer,
	},
	RolAdministrador: {
		PermSolicitudesCrear,
		PermSolicitudesCancelar,
		PermSolicitudesAprobar,
		PermSolicitudesDespachar,
		PermProductosVer,
		PermProductosGestionar,
		PermUsuariosGestionar,
		PermProgramasGestionar,
		PermBorradoresGestionar,
		PermReportesVer,
	},
}

// Roles retorna los nombres de rol reconocidos.
func Roles() []string {
	return []string{RolAprendiz, RolAdministrador, RolAlmacenista, RolDespachador}
}

// RolValido indica si el nombre pertenece al conjunto cerrado de roles.
func RolValido(rol string) bool {
	_, ok := permisosPorRol[rol]
	return ok
}

// PermisosDe retorna el conjunto de permisos del rol. Falla con
// domain.ErrRolDesconocido si el rol no está en el catálogo; eso es un defecto
// de configuración, no un caso esperado en runtime.
func PermisosDe(rol string) ([]Permiso, error) {
	permisos, ok := permisosPorRol[rol]
	if !ok {
		return nil, domain.ErrRolDesconocido
	}
	out := make([]Permiso, len(permisos))
	copy(out, permisos)
	return out, nil
}

// TienePermiso decide si el usuario puede ejecutar la acción: debe estar
// activo y, o bien ser staff (staff concede todo), o tener el permiso en el
// conjunto de su rol. Un rol fuera del catálogo nunca concede permisos.
func TienePermiso(u *entity.Usuario, p Permiso) bool {
	if u == nil || !u.IsActive {
		return false
	}
	return RolConcede(u.Rol, u.IsStaff, p)
}

// RolConcede es la variante sin entidad, pensada para decidir a partir de los
// claims del token de sesión sin ir a la base de datos.
func RolConcede(rol string, esStaff bool, p Permiso) bool {
	if esStaff {
		return true
	}
	for _, permiso := range permisosPorRol[rol] {
		if permiso == p {
			return true
		}
	}
	return false
}
