// Package resettoken genera y valida tokens de recuperación de contraseña
// con expiración, sin persistencia: el token es verificable por recomputación.
//
// El digest se calcula con HMAC-SHA256 sobre (id de usuario, hash actual de la
// contraseña, bucket de tiempo), llaveado con un secreto del servidor. Como el
// hash de la contraseña participa en el digest, cualquier cambio de contraseña
// invalida de inmediato todos los tokens emitidos antes, sin lista de
// revocación. Rotar el secreto también invalida todos los tokens vigentes.
package resettoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalido es el resultado genérico de una validación fallida. Los motivos
// concretos (malformado, firma, expirado, usuario) envuelven este error para
// que el log interno los distinga, pero al usuario final siempre se le
// presenta el mismo mensaje: sin oráculo de enumeración.
var (
	ErrInvalido   = errors.New("token inválido o caducado")
	ErrMalformado = fmt.Errorf("%w: malformado", ErrInvalido)
	ErrFirma      = fmt.Errorf("%w: firma incorrecta", ErrInvalido)
	ErrExpirado   = fmt.Errorf("%w: expirado", ErrInvalido)
	ErrUsuario    = fmt.Errorf("%w: usuario no resoluble", ErrInvalido)
)

// Generator produce y valida tokens. Se construye explícitamente con la
// configuración; no hay estado global ni mutable, por lo que es seguro para
// llamadas concurrentes.
type Generator struct {
	Secret []byte
	Window time.Duration // tamaño del bucket de cuantización temporal
	MaxAge time.Duration // vigencia máxima del token
}

// New construye un Generator con la ventana y vigencia dadas en segundos.
func New(secret string, windowSeconds, maxAgeSeconds int) Generator {
	return Generator{
		Secret: []byte(secret),
		Window: time.Duration(windowSeconds) * time.Second,
		MaxAge: time.Duration(maxAgeSeconds) * time.Second,
	}
}

// Generar emite un token para el usuario identificado por idUsuario cuyo hash
// de contraseña actual es passwordHash. El token codifica (id, bucket, digest)
// como tres segmentos opacos separados por punto.
func (g Generator) Generar(idUsuario, passwordHash string, now time.Time) string {
	bucket := now.Unix() / int64(g.Window/time.Second)
	digest := g.digest(idUsuario, passwordHash, bucket)
	return base64.RawURLEncoding.EncodeToString([]byte(idUsuario)) +
		"." + strconv.FormatInt(bucket, 36) +
		"." + base64.RawURLEncoding.EncodeToString(digest)
}

// IDUsuario extrae el identificador de usuario del token para que el caller
// pueda resolver la cuenta antes de validar. No verifica nada más.
func (g Generator) IDUsuario(token string) (string, bool) {
	id, _, _, err := decodificar(token)
	if err != nil {
		return "", false
	}
	return id, true
}

// Validar verifica el token contra el estado actual de la cuenta. El digest se
// recomputa con el hash de contraseña vigente: si la contraseña cambió desde
// la emisión, la firma deja de coincidir (auto-invalidación). La comparación
// es en tiempo constante.
func (g Generator) Validar(token, idUsuario, passwordHashActual string, now time.Time) error {
	id, bucket, digest, err := decodificar(token)
	if err != nil {
		return err
	}
	if id != idUsuario {
		return ErrUsuario
	}
	esperado := g.digest(idUsuario, passwordHashActual, bucket)
	if !hmac.Equal(digest, esperado) {
		return ErrFirma
	}
	emitido := time.Unix(bucket*int64(g.Window/time.Second), 0)
	if now.Sub(emitido) > g.MaxAge {
		return ErrExpirado
	}
	return nil
}

func (g Generator) digest(idUsuario, passwordHash string, bucket int64) []byte {
	mac := hmac.New(sha256.New, g.Secret)
	mac.Write([]byte(idUsuario))
	mac.Write([]byte{'|'})
	mac.Write([]byte(passwordHash))
	mac.Write([]byte{'|'})
	mac.Write([]byte(strconv.FormatInt(bucket, 10)))
	return mac.Sum(nil)
}

func decodificar(token string) (id string, bucket int64, digest []byte, err error) {
	partes := strings.Split(token, ".")
	if len(partes) != 3 {
		return "", 0, nil, ErrMalformado
	}
	rawID, err := base64.RawURLEncoding.DecodeString(partes[0])
	if err != nil || len(rawID) == 0 {
		return "", 0, nil, ErrMalformado
	}
	bucket, err = strconv.ParseInt(partes[1], 36, 64)
	if err != nil || bucket <= 0 {
		return "", 0, nil, ErrMalformado
	}
	digest, err = base64.RawURLEncoding.DecodeString(partes[2])
	if err != nil || len(digest) != sha256.Size {
		return "", 0, nil, ErrMalformado
	}
	return string(rawID), bucket, digest, nil
}
