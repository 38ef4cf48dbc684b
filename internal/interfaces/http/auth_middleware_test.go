package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joan632/DotappSena/internal/domain/rbac"
	apphttp "github.com/joan632/DotappSena/internal/interfaces/http"
	pkgjwt "github.com/joan632/DotappSena/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "dotapp-sena-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware, el
// middleware RBAC indicado y un handler dummy que devuelve 200 si pasa.
func buildTestApp(guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		guard,
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRol(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol y la marca staff indicados.
func tokenFor(t *testing.T, rol string, staff bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, rol, staff, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermiso
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el rol concede el permiso → HTTP 200.
func TestRequirePermiso_AprendizCreaSolicitudes(t *testing.T) {
	app := buildTestApp(apphttp.RequirePermiso(rbac.PermSolicitudesCrear))
	resp := doRequest(t, app, tokenFor(t, rbac.RolAprendiz, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"aprendiz debe poder acceder a ruta que exige solicitudes.crear")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, rbac.RolAprendiz, body["rol"])
}

// Caso 2: el rol no concede el permiso → HTTP 403 Forbidden.
func TestRequirePermiso_AprendizBloqueadoEnGestionProductos(t *testing.T) {
	app := buildTestApp(apphttp.RequirePermiso(rbac.PermProductosGestionar))
	resp := doRequest(t, app, tokenFor(t, rbac.RolAprendiz, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"aprendiz no debe poder gestionar productos")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: el despachador despacha pero no aprueba.
func TestRequirePermiso_DespachadorNoAprueba(t *testing.T) {
	app := buildTestApp(apphttp.RequirePermiso(rbac.PermSolicitudesAprobar))
	resp := doRequest(t, app, tokenFor(t, rbac.RolDespachador, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequirePermiso_AlmacenistaApruebaSolicitudes(t *testing.T) {
	app := buildTestApp(apphttp.RequirePermiso(rbac.PermSolicitudesAprobar))
	resp := doRequest(t, app, tokenFor(t, rbac.RolAlmacenista, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 4: staff pasa cualquier permiso, sea cual sea su rol.
func TestRequirePermiso_StaffConcedeTodo(t *testing.T) {
	app := buildTestApp(apphttp.RequirePermiso(rbac.PermUsuariosGestionar))
	resp := doRequest(t, app, tokenFor(t, rbac.RolAprendiz, true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"una cuenta staff pasa cualquier permiso")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_RolPermitidoAccede(t *testing.T) {
	app := buildTestApp(apphttp.RequireRole(rbac.RolAlmacenista, rbac.RolDespachador))
	resp := doRequest(t, app, tokenFor(t, rbac.RolDespachador, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolNoPermitidoBloqueado(t *testing.T) {
	app := buildTestApp(apphttp.RequireRole(rbac.RolAlmacenista))
	resp := doRequest(t, app, tokenFor(t, rbac.RolAprendiz, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_StaffPasaSiempre(t *testing.T) {
	app := buildTestApp(apphttp.RequireRole(rbac.RolAlmacenista))
	resp := doRequest(t, app, tokenFor(t, rbac.RolAprendiz, true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — validación del header y extracción de claims
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(apphttp.RequirePermiso(rbac.PermSolicitudesCrear))
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(apphttp.RequirePermiso(rbac.PermSolicitudesCrear))
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"rol":     apphttp.GetRol(c),
			"staff":   apphttp.GetStaff(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, rbac.RolAlmacenista, false))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, rbac.RolAlmacenista, body["rol"])
	assert.Equal(t, false, body["staff"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con rol y staff
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, rbac.RolDespachador, true, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, rol, staff, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, rbac.RolDespachador, rol)
	assert.True(t, staff)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, rbac.RolAprendiz, false, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, rbac.RolAprendiz, false, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "secret incorrecto debe retornar error")
}
