package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/joan632/DotappSena/internal/application/auth"
	"github.com/joan632/DotappSena/pkg/config"
)

var _ auth.MailSender = (*GomailSender)(nil)

// GomailSender envía los correos de recuperación por SMTP usando gomail.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
	app    string
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig, appName string) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		app:    appName,
	}
}

// EnviarRecuperacion envía el enlace de restablecimiento de contraseña. El
// enlace caduca solo; el cuerpo se lo advierte al destinatario.
func (s *GomailSender) EnviarRecuperacion(destino, nombre, enlace string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", destino)
	m.SetHeader("Subject", fmt.Sprintf("%s: restablecimiento de contraseña", s.app))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hola %s,\n\n"+
			"Recibimos una solicitud para restablecer tu contraseña. Abre el siguiente\n"+
			"enlace para continuar:\n\n%s\n\n"+
			"El enlace caduca en 15 minutos y deja de servir apenas cambies la\n"+
			"contraseña. Si no solicitaste el cambio, ignora este correo.\n",
		nombre, enlace))
	m.AddAlternative("text/html", fmt.Sprintf(
		"<p>Hola %s,</p>"+
			"<p>Recibimos una solicitud para restablecer tu contraseña.</p>"+
			"<p><a href=%q>Restablecer contraseña</a></p>"+
			"<p>El enlace caduca en 15 minutos y deja de servir apenas cambies la "+
			"contraseña. Si no solicitaste el cambio, ignora este correo.</p>",
		nombre, enlace))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return nil
}
