package auth

import (
	"fmt"
	"time"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/pkg/resettoken"
)

// SolicitarReset emite un token de recuperación y lo envía por correo.
//
// Si el correo no corresponde a ninguna cuenta la operación termina sin error:
// hacia afuera la respuesta es idéntica al caso exitoso para no revelar qué
// correos están registrados. El rechazo queda en el log de auditoría.
func (uc *AuthUseCase) SolicitarReset(in dto.ResetRequest) error {
	correo := entity.NormalizarCorreo(in.Correo)
	usuario, err := uc.usuarioRepo.GetByCorreo(correo)
	if err != nil {
		return err
	}
	if usuario == nil || !usuario.IsActive {
		uc.log.Auditoria("reset_token_rechazado", "").
			Str("motivo", "correo_desconocido_o_inactivo").Send()
		return nil
	}
	token := uc.tokens.Generar(usuario.ID, usuario.PasswordHash, time.Now())
	enlace := fmt.Sprintf("%s/restablecer?token=%s", uc.baseURL, token)
	if err := uc.mailer.EnviarRecuperacion(usuario.Correo, usuario.NombreCompleto(), enlace); err != nil {
		return fmt.Errorf("enviar correo de recuperación: %w", err)
	}
	uc.log.Auditoria("reset_token_emitido", usuario.ID).Send()
	return nil
}

// ConfirmarReset valida el token y, si es legítimo, cambia la contraseña.
//
// Todas las causas de fallo (token malformado, cuenta inexistente, firma que
// no coincide, expiración) se distinguen en el log pero se presentan al caller
// como el mismo resettoken.ErrInvalido: el mensaje al usuario final es siempre
// "enlace inválido o caducado".
func (uc *AuthUseCase) ConfirmarReset(in dto.ResetConfirmRequest) error {
	id, ok := uc.tokens.IDUsuario(in.Token)
	if !ok {
		uc.rechazarReset("", resettoken.ErrMalformado)
		return resettoken.ErrInvalido
	}
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		uc.rechazarReset(id, resettoken.ErrUsuario)
		return resettoken.ErrInvalido
	}
	if err := uc.tokens.Validar(in.Token, usuario.ID, usuario.PasswordHash, time.Now()); err != nil {
		uc.rechazarReset(usuario.ID, err)
		return resettoken.ErrInvalido
	}
	return uc.CambiarPassword(usuario.ID, in.Password)
}

func (uc *AuthUseCase) rechazarReset(usuarioID string, motivo error) {
	uc.log.Auditoria("reset_token_rechazado", usuarioID).
		Str("motivo", motivo.Error()).Send()
}
