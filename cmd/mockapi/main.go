// mockapi backend simulado para desarrollo local del front: implementa la
// superficie REST mínima que consume el contenedor de estado (auth + config)
// con usuarios semilla en memoria. No es el backend real.
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

	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
	"github.com/tu-usuario/imprenta-pro/internal/infrastructure/memory"
	httpRouter "github.com/tu-usuario/imprenta-pro/internal/interfaces/http"
	"github.com/tu-usuario/imprenta-pro/pkg/config"
	"github.com/tu-usuario/imprenta-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando backend simulado")

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		// Solo desarrollo: el backend real jamás arranca sin secret.
		jwtSecret = "mockapi-dev-secret"
		log.Warn().Msg("JWT_SECRET vacío; usando secret de desarrollo")
	}

	users := memory.NewUserStore()
	if err := users.SeedDemoUsers(); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios demo")
	}
	log.Info().Msg("usuarios demo: cliente@demo.com / taller@demo.com / admin@demo.com (password imprenta123)")

	revoked := httpRouter.NewRevokedTokens()
	authHandler := httpRouter.NewAuthHandler(users, revoked, httpRouter.JWTConfig{
		Secret:     jwtSecret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	configHandler := httpRouter.NewConfigHandler(entity.DefaultFeatureFlags(), entity.DefaultSystemConfig())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-mockapi",
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
		Title:    "Imprenta Pro Mock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:      authHandler,
		Config:    configHandler,
		Revoked:   revoked,
		JWTSecret: jwtSecret,
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

	log.Info().Msg("backend simulado detenido")
}
