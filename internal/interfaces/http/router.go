package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router del backend simulado.
type RouterDeps struct {
	Auth      *AuthHandler
	Config    *ConfigHandler
	Revoked   *RevokedTokens
	JWTSecret string
}

// Router registra las rutas. La superficie es exactamente la que consume el
// contenedor de estado: login/register públicos, logout y users/me con bearer,
// más el config de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)

	// Config de la app (público: se necesita antes de autenticar)
	api.Get("/config", deps.Config.Get)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Revoked))

	protected.Post("/auth/logout", deps.Auth.Logout)
	protected.Get("/users/me", deps.Auth.Me)
}
