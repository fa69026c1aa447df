package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrNoSession          = errors.New("no hay sesión activa")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidTransition  = errors.New("transición de paso no permitida")
	ErrUnknownFlag        = errors.New("feature flag desconocido")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)
