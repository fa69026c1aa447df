package dto

import (
	"time"

	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada para registro. Los campos de perfil son opcionales:
// un cliente puede completar su empresa/facturación después.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`

	Customer *CustomerProfileDTO `json:"customer_profile,omitempty"`
}

// CustomerProfileDTO perfil de cliente tal como viaja por la API.
type CustomerProfileDTO struct {
	CompanyName      string `json:"company_name,omitempty"`
	TaxID            string `json:"tax_id,omitempty"`
	BillingAddress   string `json:"billing_address,omitempty"`
	City             string `json:"city,omitempty"`
	PreferredContact string `json:"preferred_contact,omitempty"`
}

// StaffProfileDTO perfil de empleado tal como viaja por la API.
type StaffProfileDTO struct {
	Position    string          `json:"position,omitempty"`
	Permissions map[string]bool `json:"permissions,omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string              `json:"id"`
	Email     string              `json:"email"`
	Name      string              `json:"name"`
	Phone     string              `json:"phone,omitempty"`
	Role      string              `json:"role"`
	Status    string              `json:"status"`
	Customer  *CustomerProfileDTO `json:"customer_profile,omitempty"`
	Staff     *StaffProfileDTO    `json:"staff_profile,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToEntity convierte la respuesta de la API a la entidad de dominio.
func (r UserResponse) ToEntity() *entity.User {
	u := &entity.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Phone:     r.Phone,
		Role:      r.Role,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Customer != nil {
		u.Customer = &entity.CustomerProfile{
			CompanyName:      r.Customer.CompanyName,
			TaxID:            r.Customer.TaxID,
			BillingAddress:   r.Customer.BillingAddress,
			City:             r.Customer.City,
			PreferredContact: r.Customer.PreferredContact,
		}
	}
	if r.Staff != nil {
		perms := make(map[string]bool, len(r.Staff.Permissions))
		for k, v := range r.Staff.Permissions {
			perms[k] = v
		}
		u.Staff = &entity.StaffProfile{
			Position:    r.Staff.Position,
			Permissions: perms,
		}
	}
	return u
}

// FromEntity construye la respuesta API a partir de la entidad (lo usa el backend simulado).
func FromEntity(u *entity.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	r := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Customer != nil {
		r.Customer = &CustomerProfileDTO{
			CompanyName:      u.Customer.CompanyName,
			TaxID:            u.Customer.TaxID,
			BillingAddress:   u.Customer.BillingAddress,
			City:             u.Customer.City,
			PreferredContact: u.Customer.PreferredContact,
		}
	}
	if u.Staff != nil {
		perms := make(map[string]bool, len(u.Staff.Permissions))
		for k, v := range u.Staff.Permissions {
			perms[k] = v
		}
		r.Staff = &StaffProfileDTO{Position: u.Staff.Position, Permissions: perms}
	}
	return r
}

// ── Parches de perfil (merge local, sin red) ──────────────────────────────────

// UserPatch campos parciales del usuario. Puntero nil = no tocar el campo.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// CustomerProfilePatch campos parciales del perfil de cliente.
type CustomerProfilePatch struct {
	CompanyName      *string `json:"company_name,omitempty"`
	TaxID            *string `json:"tax_id,omitempty"`
	BillingAddress   *string `json:"billing_address,omitempty"`
	City             *string `json:"city,omitempty"`
	PreferredContact *string `json:"preferred_contact,omitempty"`
}

// StaffProfilePatch campos parciales del perfil de empleado. Permissions
// reemplaza el mapa completo si no es nil.
type StaffProfilePatch struct {
	Position    *string         `json:"position,omitempty"`
	Permissions map[string]bool `json:"permissions,omitempty"`
}
