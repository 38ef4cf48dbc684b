package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joan632/DotappSena/internal/application/auth"
	"github.com/joan632/DotappSena/internal/application/usecase"
	"github.com/joan632/DotappSena/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	ProductoUC  *usecase.ProductoUseCase
	CatalogoUC  *usecase.CatalogoUseCase
	SolicitudUC *usecase.SolicitudUseCase
	BorradorUC  *usecase.BorradorUseCase
	ProgramaUC  *usecase.ProgramaUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Cada grupo protegido declara el
// permiso que exige; el middleware decide con los claims del token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-reset", authHandler.SolicitarReset)
	authGroup.Post("/password-reset/confirm", authHandler.ConfirmarReset)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	authGroup = protected.Group("/auth")
	authGroup.Get("/me", authHandler.Me)
	authGroup.Put("/password", authHandler.CambiarPassword)

	// Productos: ver para todos los autenticados, gestionar solo almacenista.
	productos := protected.Group("/productos", RequirePermiso(rbac.PermProductosVer))
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	gestion := productos.Group("/", RequirePermiso(rbac.PermProductosGestionar))
	gestion.Post("/", productoHandler.Create)
	gestion.Put("/:id", productoHandler.Update)
	gestion.Delete("/:id", productoHandler.Delete)

	// Catálogos de tipos, tallas y colores.
	catalogos := protected.Group("/catalogos", RequirePermiso(rbac.PermProductosVer))
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	catalogos.Get("/tipos", catalogoHandler.ListTipos)
	catalogos.Get("/tallas", catalogoHandler.ListTallas)
	catalogos.Get("/colores", catalogoHandler.ListColores)
	catalogos.Post("/tipos", RequirePermiso(rbac.PermProductosGestionar), catalogoHandler.CreateTipo)
	catalogos.Post("/tallas", RequirePermiso(rbac.PermProductosGestionar), catalogoHandler.CreateTalla)
	catalogos.Post("/colores", RequirePermiso(rbac.PermProductosGestionar), catalogoHandler.CreateColor)

	// Solicitudes: crear/cancelar el aprendiz, aprobar el almacenista,
	// despachar y entregar el despachador.
	solicitudes := protected.Group("/solicitudes")
	solicitudHandler := NewSolicitudHandler(deps.SolicitudUC)
	solicitudes.Post("/", RequirePermiso(rbac.PermSolicitudesCrear), solicitudHandler.Create)
	solicitudes.Get("/mias", RequirePermiso(rbac.PermSolicitudesCrear), solicitudHandler.ListMine)
	solicitudes.Get("/", RequireRole(rbac.RolAdministrador, rbac.RolAlmacenista, rbac.RolDespachador), solicitudHandler.List)
	solicitudes.Get("/:id", solicitudHandler.GetByID)
	solicitudes.Post("/:id/aprobar", RequirePermiso(rbac.PermSolicitudesAprobar), solicitudHandler.Aprobar)
	solicitudes.Post("/:id/rechazar", RequirePermiso(rbac.PermSolicitudesAprobar), solicitudHandler.Rechazar)
	solicitudes.Post("/:id/despachar", RequirePermiso(rbac.PermSolicitudesDespachar), solicitudHandler.Despachar)
	solicitudes.Post("/:id/entregar", RequirePermiso(rbac.PermSolicitudesDespachar), solicitudHandler.Entregar)
	solicitudes.Post("/:id/cancelar", RequirePermiso(rbac.PermSolicitudesCancelar), solicitudHandler.Cancelar)

	// Borradores: propios del aprendiz.
	borradores := protected.Group("/borradores", RequirePermiso(rbac.PermBorradoresGestionar))
	borradorHandler := NewBorradorHandler(deps.BorradorUC)
	borradores.Post("/", borradorHandler.Create)
	borradores.Get("/", borradorHandler.List)
	borradores.Put("/:id", borradorHandler.Update)
	borradores.Delete("/:id", borradorHandler.Delete)

	// Centros y programas: lectura general, escritura administrativa.
	programaHandler := NewProgramaHandler(deps.ProgramaUC)
	centros := protected.Group("/centros")
	centros.Get("/", programaHandler.ListCentros)
	centros.Post("/", RequirePermiso(rbac.PermProgramasGestionar), programaHandler.CreateCentro)
	programas := protected.Group("/programas")
	programas.Get("/", programaHandler.ListProgramas)
	programas.Post("/", RequirePermiso(rbac.PermProgramasGestionar), programaHandler.CreatePrograma)

	// Usuarios (administrador)
	usuarios := protected.Group("/usuarios", RequirePermiso(rbac.PermUsuariosGestionar))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Post("/:id/activar", usuarioHandler.Activar)
	usuarios.Post("/:id/desactivar", usuarioHandler.Desactivar)
	usuarios.Put("/:id/rol", usuarioHandler.CambiarRol)
}
