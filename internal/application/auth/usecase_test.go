package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joan632/DotappSena/internal/application/auth"
	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/rbac"
	"github.com/joan632/DotappSena/pkg/logger"
	"github.com/joan632/DotappSena/pkg/resettoken"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	porID     map[string]*entity.Usuario
	porCorreo map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{
		porID:     make(map[string]*entity.Usuario),
		porCorreo: make(map[string]*entity.Usuario),
	}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := r.porCorreo[u.Correo]; ok {
		return domain.ErrCorreoRegistrado
	}
	cp := *u
	r.porID[u.ID] = &cp
	r.porCorreo[u.Correo] = &cp
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) GetByCorreo(correo string) (*entity.Usuario, error) {
	u, ok := r.porCorreo[correo]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	existente, ok := r.porID[u.ID]
	if !ok {
		return domain.ErrUsuarioNoEncontrado
	}
	delete(r.porCorreo, existente.Correo)
	cp := *u
	r.porID[u.ID] = &cp
	r.porCorreo[u.Correo] = &cp
	return nil
}

func (r *fakeUsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.porID))
	for _, u := range r.porID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) ExisteSuperusuario() (bool, error) {
	for _, u := range r.porID {
		if u.IsStaff && u.Rol == rbac.RolAdministrador {
			return true, nil
		}
	}
	return false, nil
}

type fakeMailer struct {
	destinos []string
	enlaces  []string
}

func (m *fakeMailer) EnviarRecuperacion(destino, nombre, enlace string) error {
	m.destinos = append(m.destinos, destino)
	m.enlaces = append(m.enlaces, enlace)
	return nil
}

func newTestUseCase(t *testing.T) (*auth.AuthUseCase, *fakeUsuarioRepo, *fakeMailer) {
	t.Helper()
	repo := newFakeUsuarioRepo()
	mailer := &fakeMailer{}
	// Costo bcrypt mínimo para que los tests no se arrastren.
	uc := auth.NewAuthUseCase(repo, resettoken.New("secreto-de-test", 60, 900), mailer, auth.JWTConfig{
		Secret:     "jwt-secret-test",
		ExpMinutes: 30,
		Issuer:     "dotapp-sena-test",
	}, 4, "http://localhost:8080", logger.Nop())
	return uc, repo, mailer
}

func registrar(t *testing.T, uc *auth.AuthUseCase, correo string) *dto.UsuarioResponse {
	t.Helper()
	out, err := uc.Registrar(dto.RegisterRequest{
		Nombre:   "Ana",
		Apellido: "Mejía",
		Correo:   correo,
		Password: "contraseña-inicial",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_NormalizaCorreoYAsignaAprendiz(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	out, err := uc.Registrar(dto.RegisterRequest{
		Nombre:   "Ana",
		Apellido: "Mejía",
		Correo:   "  Ana.Mejia@Example.COM ",
		Password: "contraseña-inicial",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana.mejia@example.com", out.Correo)
	assert.Equal(t, rbac.RolAprendiz, out.Rol)
	assert.True(t, out.IsActive)
	assert.False(t, out.IsStaff)
}

func TestRegistrar_CorreoDuplicadoFalla(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	registrar(t, uc, "ana@example.com")

	// Mismo correo con mayúsculas: sigue siendo duplicado.
	_, err := uc.Registrar(dto.RegisterRequest{
		Nombre:   "Otra",
		Apellido: "Ana",
		Correo:   "ANA@example.com",
		Password: "otra-contraseña",
	})
	assert.ErrorIs(t, err, domain.ErrCorreoRegistrado)
}

func TestRegistrar_RolDesconocidoFalla(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Registrar(dto.RegisterRequest{
		Nombre:   "Ana",
		Apellido: "Mejía",
		Correo:   "ana@example.com",
		Password: "contraseña-inicial",
		Rol:      "instructor",
	})
	assert.ErrorIs(t, err, domain.ErrRolDesconocido)
}

func TestRegistrar_NoGuardaPasswordEnClaro(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	out := registrar(t, uc, "ana@example.com")

	guardado, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "contraseña-inicial", guardado.PasswordHash)
	assert.True(t, strings.HasPrefix(guardado.PasswordHash, "$2"), "debe ser un hash bcrypt")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	registrar(t, uc, "ana@example.com")

	out, err := uc.Login(dto.LoginRequest{Correo: "Ana@Example.com", Password: "contraseña-inicial"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@example.com", out.Usuario.Correo)
}

func TestLogin_PasswordIncorrectaYCorreoInexistente_MismoError(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	registrar(t, uc, "ana@example.com")

	_, errPassword := uc.Login(dto.LoginRequest{Correo: "ana@example.com", Password: "equivocada"})
	_, errCorreo := uc.Login(dto.LoginRequest{Correo: "nadie@example.com", Password: "equivocada"})

	assert.ErrorIs(t, errPassword, domain.ErrCredenciales)
	assert.ErrorIs(t, errCorreo, domain.ErrCredenciales)
}

func TestLogin_CuentaInactivaBloqueada(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	out := registrar(t, uc, "ana@example.com")

	u, _ := repo.GetByID(out.ID)
	u.IsActive = false
	require.NoError(t, repo.Update(u))

	_, err := uc.Login(dto.LoginRequest{Correo: "ana@example.com", Password: "contraseña-inicial"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Superusuario
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearSuperusuario_EsUnicoYStaff(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	admin, err := uc.CrearSuperusuario("Root", "Admin", "admin@example.com", "admin-password", "")
	require.NoError(t, err)
	assert.Equal(t, rbac.RolAdministrador, admin.Rol)
	assert.True(t, admin.IsStaff)

	_, err = uc.CrearSuperusuario("Root", "Admin", "otro@example.com", "admin-password", "")
	assert.ErrorIs(t, err, domain.ErrSuperusuarioExiste)
}

func TestCrearSuperusuario_RolExplicitoDistintoFalla(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.CrearSuperusuario("Root", "Admin", "admin@example.com", "admin-password", rbac.RolAprendiz)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func tokenDelEnlace(t *testing.T, enlace string) string {
	t.Helper()
	i := strings.Index(enlace, "token=")
	require.GreaterOrEqual(t, i, 0, "el enlace debe llevar el token")
	return enlace[i+len("token="):]
}

func TestReset_FlujoCompleto(t *testing.T) {
	uc, _, mailer := newTestUseCase(t)
	registrar(t, uc, "ana@example.com")

	require.NoError(t, uc.SolicitarReset(dto.ResetRequest{Correo: "ana@example.com"}))
	require.Len(t, mailer.destinos, 1)
	assert.Equal(t, "ana@example.com", mailer.destinos[0])

	token := tokenDelEnlace(t, mailer.enlaces[0])
	require.NoError(t, uc.ConfirmarReset(dto.ResetConfirmRequest{
		Token:    token,
		Password: "contraseña-nueva",
	}))

	// La contraseña vieja deja de servir, la nueva entra.
	_, err := uc.Login(dto.LoginRequest{Correo: "ana@example.com", Password: "contraseña-inicial"})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
	_, err = uc.Login(dto.LoginRequest{Correo: "ana@example.com", Password: "contraseña-nueva"})
	assert.NoError(t, err)
}

func TestReset_CorreoDesconocidoNoFallaNiEnvia(t *testing.T) {
	uc, _, mailer := newTestUseCase(t)

	// Misma respuesta que el caso exitoso: sin error.
	require.NoError(t, uc.SolicitarReset(dto.ResetRequest{Correo: "nadie@example.com"}))
	assert.Empty(t, mailer.destinos, "no debe enviarse ningún correo")
}

func TestReset_TokenSeInvalidaAlCambiarPassword(t *testing.T) {
	uc, _, mailer := newTestUseCase(t)
	out := registrar(t, uc, "ana@example.com")

	require.NoError(t, uc.SolicitarReset(dto.ResetRequest{Correo: "ana@example.com"}))
	token := tokenDelEnlace(t, mailer.enlaces[0])

	// Cambio de contraseña por otra vía: el hash rota y el token muere solo.
	require.NoError(t, uc.CambiarPassword(out.ID, "cambiada-a-mano"))

	err := uc.ConfirmarReset(dto.ResetConfirmRequest{Token: token, Password: "contraseña-nueva"})
	assert.ErrorIs(t, err, resettoken.ErrInvalido)
}

func TestReset_TokenUsadoNoSirveDosVeces(t *testing.T) {
	uc, _, mailer := newTestUseCase(t)
	registrar(t, uc, "ana@example.com")

	require.NoError(t, uc.SolicitarReset(dto.ResetRequest{Correo: "ana@example.com"}))
	token := tokenDelEnlace(t, mailer.enlaces[0])

	require.NoError(t, uc.ConfirmarReset(dto.ResetConfirmRequest{Token: token, Password: "contraseña-nueva"}))

	// El primer uso rotó el hash, así que el mismo token queda inválido.
	err := uc.ConfirmarReset(dto.ResetConfirmRequest{Token: token, Password: "otra-mas"})
	assert.ErrorIs(t, err, resettoken.ErrInvalido)
}

func TestReset_TokenBasuraRechazadoConErrorGenerico(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	err := uc.ConfirmarReset(dto.ResetConfirmRequest{Token: "no-es-un-token", Password: "contraseña-nueva"})
	assert.ErrorIs(t, err, resettoken.ErrInvalido)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestCambiarPassword_MuyCortaFalla(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	out := registrar(t, uc, "ana@example.com")

	err := uc.CambiarPassword(out.ID, "corta")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
