package auth

// MailSender es el contrato mínimo para enviar el correo de recuperación de
// contraseña. Lo implementa infrastructure/mail; la interfaz evita acoplar el
// caso de uso al transporte SMTP.
type MailSender interface {
	EnviarRecuperacion(destino, nombre, enlace string) error
}
