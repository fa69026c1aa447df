package http

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/imprenta-pro/internal/application/dto"
	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
	"github.com/tu-usuario/imprenta-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/imprenta-pro/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens del backend simulado.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RevokedTokens conjunto de tokens cerrados por logout.
type RevokedTokens struct {
	mu  sync.RWMutex
	set map[string]struct{}
}

// NewRevokedTokens construye el conjunto vacío.
func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{set: map[string]struct{}{}}
}

// Revoke marca un token como cerrado.
func (r *RevokedTokens) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set[token] = struct{}{}
}

// IsRevoked informa si el token fue cerrado.
func (r *RevokedTokens) IsRevoked(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.set[token]
	return ok
}

// AuthHandler maneja registro, login, logout y el "quién soy" del backend simulado.
type AuthHandler struct {
	users   *memory.UserStore
	revoked *RevokedTokens
	jwtCfg  JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(users *memory.UserStore, revoked *RevokedTokens, jwtCfg JWTConfig) *AuthHandler {
	return &AuthHandler{users: users, revoked: revoked, jwtCfg: jwtCfg}
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password y name son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}

	user := &entity.User{
		Email: in.Email,
		Name:  in.Name,
		Phone: in.Phone,
		Role:  entity.RoleCustomer, // el registro público siempre crea clientes
	}
	if in.Customer != nil {
		user.Customer = &entity.CustomerProfile{
			CompanyName:      in.Customer.CompanyName,
			TaxID:            in.Customer.TaxID,
			BillingAddress:   in.Customer.BillingAddress,
			City:             in.Customer.City,
			PreferredContact: in.Customer.PreferredContact,
		}
	}

	if err := h.users.Create(user, in.Password); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de registro inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	token, err := jwt.Generate(h.jwtCfg.Secret, user.ID, user.Role, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LoginResponse{Token: token, User: dto.FromEntity(user)})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}

	user, err := h.users.Authenticate(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	token, err := jwt.Generate(h.jwtCfg.Secret, user.ID, user.Role, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{Token: token, User: dto.FromEntity(user)})
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := GetToken(c); token != "" {
		h.revoked.Revoke(token)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Usuario autenticado (sonda de token)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.GetByID(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario del token no existe"})
	}
	return c.JSON(dto.FromEntity(user))
}
