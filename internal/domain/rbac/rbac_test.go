package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/rbac"
)

func usuario(rol string, activo, staff bool) *entity.Usuario {
	return &entity.Usuario{
		ID:       "u-1",
		Correo:   "persona@sena.test",
		Rol:      rol,
		IsActive: activo,
		IsStaff:  staff,
	}
}

// El catálogo es cerrado: un rol fuera del conjunto falla con ErrRolDesconocido.
func TestPermisosDe_RolDesconocido(t *testing.T) {
	_, err := rbac.PermisosDe("superheroe")
	assert.ErrorIs(t, err, domain.ErrRolDesconocido)

	for _, rol := range rbac.Roles() {
		permisos, err := rbac.PermisosDe(rol)
		require.NoError(t, err, "rol %s", rol)
		assert.NotEmpty(t, permisos, "todo rol del catálogo tiene permisos")
	}
}

// Un aprendiz puede crear y cancelar solicitudes pero no gestionarlas ni
// administrar usuarios.
func TestTienePermiso_Aprendiz(t *testing.T) {
	u := usuario(rbac.RolAprendiz, true, false)

	assert.True(t, rbac.TienePermiso(u, rbac.PermSolicitudesCrear))
	assert.True(t, rbac.TienePermiso(u, rbac.PermSolicitudesCancelar))
	assert.True(t, rbac.TienePermiso(u, rbac.PermBorradoresGestionar))
	assert.False(t, rbac.TienePermiso(u, rbac.PermSolicitudesAprobar))
	assert.False(t, rbac.TienePermiso(u, rbac.PermProductosGestionar))
	assert.False(t, rbac.TienePermiso(u, rbac.PermUsuariosGestionar))
}

// El almacenista gestiona inventario y aprueba; el despachador despacha.
func TestTienePermiso_RolesOperativos(t *testing.T) {
	almacenista := usuario(rbac.RolAlmacenista, true, false)
	assert.True(t, rbac.TienePermiso(almacenista, rbac.PermProductosGestionar))
	assert.True(t, rbac.TienePermiso(almacenista, rbac.PermSolicitudesAprobar))
	assert.False(t, rbac.TienePermiso(almacenista, rbac.PermSolicitudesDespachar))

	despachador := usuario(rbac.RolDespachador, true, false)
	assert.True(t, rbac.TienePermiso(despachador, rbac.PermSolicitudesDespachar))
	assert.False(t, rbac.TienePermiso(despachador, rbac.PermSolicitudesAprobar))
}

// Staff concede todos los permisos sin importar el rol.
func TestTienePermiso_StaffConcedeTodo(t *testing.T) {
	u := usuario(rbac.RolAprendiz, true, true)
	for _, p := range []rbac.Permiso{
		rbac.PermSolicitudesAprobar,
		rbac.PermSolicitudesDespachar,
		rbac.PermProductosGestionar,
		rbac.PermUsuariosGestionar,
		rbac.PermProgramasGestionar,
	} {
		assert.True(t, rbac.TienePermiso(u, p), "staff debe tener %s", p)
	}
}

// Una cuenta inactiva no tiene permisos, ni siquiera siendo staff.
func TestTienePermiso_InactivoSinPermisos(t *testing.T) {
	inactivo := usuario(rbac.RolAdministrador, false, true)
	assert.False(t, rbac.TienePermiso(inactivo, rbac.PermProductosVer))
	assert.False(t, rbac.TienePermiso(nil, rbac.PermProductosVer))
}

// RolConcede decide a partir de claims (sin entidad): rol desconocido no
// concede nada salvo que sea staff.
func TestRolConcede(t *testing.T) {
	assert.True(t, rbac.RolConcede(rbac.RolAlmacenista, false, rbac.PermProductosGestionar))
	assert.False(t, rbac.RolConcede("inventado", false, rbac.PermProductosVer))
	assert.True(t, rbac.RolConcede("inventado", true, rbac.PermProductosVer))
	assert.False(t, rbac.RolValido("inventado"))
	assert.True(t, rbac.RolValido(rbac.RolDespachador))
}
