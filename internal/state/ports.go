package state

import (
	"context"
	"errors"

	"github.com/tu-usuario/imprenta-pro/internal/application/dto"
)

// AuthAPI contrato mínimo del backend de autenticación. Lo implementa el
// cliente REST (internal/infrastructure/rest); el uso de interfaz permite
// tests del store con un backend falso.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*dto.UserResponse, error)
}

// ConfigAPI obtiene feature flags y constantes de negocio del servidor.
type ConfigAPI interface {
	FetchAppConfig(ctx context.Context) (*dto.AppConfigResponse, error)
}

// Slot ranura de almacenamiento durable del lado cliente (clave fija → bytes).
// Load devuelve domain.ErrNotFound cuando la clave no existe todavía.
type Slot interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// userMessager lo implementan los errores que traen un mensaje apto para
// mostrar al usuario (rest.APIError con el `message` del servidor).
type userMessager interface {
	UserMessage() string
}

// fallbackErrorMessage mensaje genérico para fallos de transporte sin mensaje del servidor.
const fallbackErrorMessage = "no pudimos completar la operación, intenta de nuevo"

// userMessage extrae el mensaje mostrable de un error: el `message` del
// servidor si existe, o el texto genérico de respaldo.
func userMessage(err error) string {
	var um userMessager
	if errors.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage()
	}
	return fallbackErrorMessage
}
