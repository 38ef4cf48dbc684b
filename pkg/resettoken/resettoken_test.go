package resettoken_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joan632/DotappSena/pkg/resettoken"
)

const (
	testSecret = "secreto-de-pruebas-no-usar-en-produccion"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testHash   = "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456"
)

// Generador con ventana de 60s y vigencia de 15 minutos (la misma que usaba
// el flujo original de recuperación de contraseña).
func newGen() resettoken.Generator {
	return resettoken.New(testSecret, 60, 900)
}

// Ida y vuelta: un token recién emitido debe validar dentro de su vigencia
// mientras el hash de la contraseña no cambie.
func TestGenerarValidar_IdaYVuelta(t *testing.T) {
	g := newGen()
	t0 := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	tok := g.Generar(testUserID, testHash, t0)
	require.NotEmpty(t, tok)

	id, ok := g.IDUsuario(tok)
	require.True(t, ok)
	assert.Equal(t, testUserID, id, "el token debe codificar el id del usuario")

	assert.NoError(t, g.Validar(tok, testUserID, testHash, t0.Add(time.Second)))
	assert.NoError(t, g.Validar(tok, testUserID, testHash, t0.Add(14*time.Minute)))
}

// Expiración: pasada la vigencia máxima el token debe rechazarse con el motivo
// interno ErrExpirado, que sigue siendo ErrInvalido de cara al usuario.
func TestValidar_Expirado(t *testing.T) {
	g := newGen()
	t0 := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	tok := g.Generar(testUserID, testHash, t0)
	err := g.Validar(tok, testUserID, testHash, t0.Add(15*time.Minute+time.Second))
	require.Error(t, err)
	assert.ErrorIs(t, err, resettoken.ErrExpirado)
	assert.ErrorIs(t, err, resettoken.ErrInvalido)
}

// Auto-invalidación: cambiar la contraseña invalida los tokens emitidos antes
// aunque sigan dentro de su ventana temporal.
func TestValidar_CambioDePasswordInvalida(t *testing.T) {
	g := newGen()
	t0 := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	tok := g.Generar(testUserID, testHash, t0)
	require.NoError(t, g.Validar(tok, testUserID, testHash, t0.Add(time.Minute)))

	otroHash := "$2a$10$zyxwvutsrqponmlkjihgfedcba987654321098765432109876543"
	err := g.Validar(tok, testUserID, otroHash, t0.Add(time.Minute))
	assert.ErrorIs(t, err, resettoken.ErrFirma)
	assert.ErrorIs(t, err, resettoken.ErrInvalido)
}

// Un token emitido para una cuenta no debe validar contra otra, aunque el
// resto de parámetros coincida.
func TestValidar_IDForjado(t *testing.T) {
	g := newGen()
	t0 := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	tok := g.Generar(testUserID, testHash, t0)
	err := g.Validar(tok, "00000000-0000-0000-0000-000000000099", testHash, t0.Add(time.Minute))
	assert.ErrorIs(t, err, resettoken.ErrInvalido)
}

// Tokens malformados nunca deben producir pánico ni validar: siempre
// ErrMalformado.
func TestValidar_Malformado(t *testing.T) {
	g := newGen()
	now := time.Now()

	casos := []string{
		"",
		"sin-puntos",
		"a.b",
		"a.b.c.d",
		"!!!.1.AAAA",
		"QQ.no-base36!.AAAA",
		"QQ.1.digest-corto",
	}
	for _, tok := range casos {
		err := g.Validar(tok, testUserID, testHash, now)
		assert.ErrorIs(t, err, resettoken.ErrMalformado, "token %q", tok)

		_, ok := g.IDUsuario(tok)
		assert.False(t, ok, "token %q no debe decodificar un id", tok)
	}
}

// Manipular cualquier segmento del token debe romper la firma o el formato.
func TestValidar_TokenManipulado(t *testing.T) {
	g := newGen()
	t0 := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	tok := g.Generar(testUserID, testHash, t0)
	partes := strings.Split(tok, ".")
	require.Len(t, partes, 3)

	// Bucket adulterado: la firma deja de coincidir.
	adulterado := partes[0] + "." + "zzz" + "." + partes[2]
	err := g.Validar(adulterado, testUserID, testHash, t0.Add(time.Minute))
	assert.ErrorIs(t, err, resettoken.ErrInvalido)
}

// Tokens firmados con otro secreto (p. ej. tras rotación) no validan.
func TestValidar_SecretoRotado(t *testing.T) {
	t0 := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	tok := newGen().Generar(testUserID, testHash, t0)
	otro := resettoken.New("secreto-rotado", 60, 900)
	err := otro.Validar(tok, testUserID, testHash, t0.Add(time.Minute))
	assert.ErrorIs(t, err, resettoken.ErrFirma)
}

// Dentro del mismo bucket el token es estable (mismo digest), entre buckets
// distintos cambia. Ambos validan mientras no expiren.
func TestGenerar_BucketsEstables(t *testing.T) {
	g := newGen()
	t0 := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	tok1 := g.Generar(testUserID, testHash, t0)
	tok2 := g.Generar(testUserID, testHash, t0.Add(10*time.Second)) // mismo bucket de 60s
	tok3 := g.Generar(testUserID, testHash, t0.Add(2*time.Minute))

	assert.Equal(t, tok1, tok2, "dentro del mismo bucket el token debe ser estable")
	assert.NotEqual(t, tok1, tok3, "buckets distintos producen tokens distintos")
	assert.NoError(t, g.Validar(tok3, testUserID, testHash, t0.Add(3*time.Minute)))
}
