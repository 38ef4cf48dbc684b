// setup_admin crea la cuenta administradora inicial a partir de ADMIN_EMAIL y
// ADMIN_PASSWORD. Es idempotente: si el superusuario ya existe termina con
// éxito sin tocar nada.
//
// Uso: go run ./cmd/setup_admin
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joan632/DotappSena/internal/application/auth"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/infrastructure/postgres"
	"github.com/joan632/DotappSena/pkg/config"
	"github.com/joan632/DotappSena/pkg/logger"
	"github.com/joan632/DotappSena/pkg/resettoken"
)

// noopMailer satisface auth.MailSender; este comando nunca envía correos.
type noopMailer struct{}

func (noopMailer) EnviarRecuperacion(string, string, string) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_EMAIL y ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}
	if len(cfg.Admin.Password) < 8 {
		fmt.Fprintln(os.Stderr, "ADMIN_PASSWORD debe tener al menos 8 caracteres")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	tokens := resettoken.New(cfg.Reset.Secret, cfg.Reset.WindowSeconds, cfg.Reset.MaxAgeSeconds)
	authUC := auth.NewAuthUseCase(usuarioRepo, tokens, noopMailer{}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.BcryptCost, cfg.App.BaseURL, log)

	admin, err := authUC.CrearSuperusuario("Administrador", "Dotapp", cfg.Admin.Email, cfg.Admin.Password, "")
	if err != nil {
		if errors.Is(err, domain.ErrSuperusuarioExiste) {
			fmt.Println("el superusuario ya existe, nada que hacer")
			return
		}
		if errors.Is(err, domain.ErrCorreoRegistrado) {
			fmt.Fprintln(os.Stderr, "el correo ya está registrado con otra cuenta")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "crear superusuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("superusuario creado: %s (%s)\n", admin.Correo, admin.ID)
}
