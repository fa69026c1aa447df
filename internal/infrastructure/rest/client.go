// Package rest implementa el cliente HTTP del backend de la imprenta.
// Única frontera externa del contenedor junto con la ranura de almacenamiento:
// JSON en ambos sentidos, bearer token por petición (nunca inyectado central-
// mente), sin reintentos ni backoff: eso pertenece a la capa de datos de cada
// vista, no a este cliente.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/imprenta-pro/internal/application/dto"
	"github.com/tu-usuario/imprenta-pro/pkg/logger"
)

// APIError error devuelto por el servidor con código HTTP y, si el cuerpo lo
// trae, el `message` legible para el usuario (se muestra tal cual).
type APIError struct {
	Status  int
	Code    string
	Message string
}

// Error implementa error.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api (%d %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api (%d)", e.Status)
}

// UserMessage mensaje apto para mostrar al usuario (lo consume el store).
func (e *APIError) UserMessage() string { return e.Message }

// Client cliente REST del backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// New construye el cliente. timeout cero usa 20s.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log.Component("rest"),
	}
}

// request ciclo completo de una petición JSON: encode, bearer opcional,
// decodificación del cuerpo o del error según el status.
func (c *Client) request(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("rest: serializar petición: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("rest: construir petición: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rest: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.decodeError(method, path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest: decodificar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError convierte un status >= 400 en *APIError, rescatando el
// `message` del cuerpo si el servidor envió uno.
func (c *Client) decodeError(method, path string, resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var body dto.ErrorResponse
	if err := json.Unmarshal(payload, &body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("code", apiErr.Code).
		Msg("respuesta de error del backend")
	return apiErr
}

// ── Endpoints de autenticación ────────────────────────────────────────────────

// Login POST /api/auth/login.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.request(ctx, http.MethodPost, "/api/auth/login", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register POST /api/auth/register.
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.request(ctx, http.MethodPost, "/api/auth/register", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout POST /api/auth/logout (bearer).
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.request(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}

// Me GET /api/users/me (bearer): valida el token persistido y devuelve el
// usuario con su perfil por rol.
func (c *Client) Me(ctx context.Context, token string) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.request(ctx, http.MethodGet, "/api/users/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Config remoto ─────────────────────────────────────────────────────────────

// FetchAppConfig GET /api/config: feature flags + constantes de negocio.
func (c *Client) FetchAppConfig(ctx context.Context) (*dto.AppConfigResponse, error) {
	var out dto.AppConfigResponse
	if err := c.request(ctx, http.MethodGet, "/api/config", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
