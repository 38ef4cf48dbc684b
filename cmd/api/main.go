package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/joan632/DotappSena/internal/application/auth"
	"github.com/joan632/DotappSena/internal/application/usecase"
	"github.com/joan632/DotappSena/internal/infrastructure/mail"
	"github.com/joan632/DotappSena/internal/infrastructure/postgres"
	httpRouter "github.com/joan632/DotappSena/internal/interfaces/http"
	"github.com/joan632/DotappSena/pkg/config"
	"github.com/joan632/DotappSena/pkg/logger"
	"github.com/joan632/DotappSena/pkg/resettoken"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	catalogoRepo := postgres.NewCatalogoRepository(pool)
	solicitudRepo := postgres.NewSolicitudRepository(pool)
	borradorRepo := postgres.NewBorradorRepository(pool)
	programaRepo := postgres.NewProgramaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewGomailSender(cfg.SMTP, cfg.App.Name)
	tokens := resettoken.New(cfg.Reset.Secret, cfg.Reset.WindowSeconds, cfg.Reset.MaxAgeSeconds)

	authUC := auth.NewAuthUseCase(usuarioRepo, tokens, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.BcryptCost, cfg.App.BaseURL, log)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, log)
	productoUC := usecase.NewProductoUseCase(productoRepo, catalogoRepo)
	catalogoUC := usecase.NewCatalogoUseCase(catalogoRepo)
	solicitudUC := usecase.NewSolicitudUseCase(txRunner, solicitudRepo, productoRepo, programaRepo, log)
	borradorUC := usecase.NewBorradorUseCase(borradorRepo)
	programaUC := usecase.NewProgramaUseCase(programaRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dotapp SENA API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UsuarioUC:   usuarioUC,
		ProductoUC:  productoUC,
		CatalogoUC:  catalogoUC,
		SolicitudUC: solicitudUC,
		BorradorUC:  borradorUC,
		ProgramaUC:  programaUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
