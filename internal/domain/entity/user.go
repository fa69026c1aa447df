package entity

import "time"

// Roles válidos para User.
const (
	RoleCustomer = "CUSTOMER"
	RoleStaff    = "STAFF"
	RoleAdmin    = "ADMIN"
)

// User representa al usuario autenticado de la sesión. El servidor es la fuente
// de verdad; esta capa solo refleja lo que devuelven login/register/me.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`   // CUSTOMER, STAFF, ADMIN (vocabulario del servidor; se preserva tal cual)
	Status    string    `json:"status"` // active, inactive, suspended
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Perfiles por rol. Puntero nil = el servidor no envió perfil (distinto de perfil vacío).
	Customer *CustomerProfile `json:"customer,omitempty"`
	Staff    *StaffProfile    `json:"staff,omitempty"`
}

// CustomerProfile datos de contacto y facturación de un cliente.
type CustomerProfile struct {
	CompanyName      string `json:"company_name,omitempty"`
	TaxID            string `json:"tax_id,omitempty"`
	BillingAddress   string `json:"billing_address,omitempty"`
	City             string `json:"city,omitempty"`
	PreferredContact string `json:"preferred_contact,omitempty"` // email, phone, whatsapp
}

// StaffProfile datos operativos de un empleado del taller.
type StaffProfile struct {
	Position    string          `json:"position,omitempty"`
	Permissions map[string]bool `json:"permissions,omitempty"` // ej: {"quotes": true, "orders": true, "admin_panel": false}
}

// Clone devuelve una copia profunda del usuario. El store entrega snapshots por
// valor y no debe compartir memoria mutable con las vistas.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Customer != nil {
		c := *u.Customer
		cp.Customer = &c
	}
	if u.Staff != nil {
		s := *u.Staff
		s.Permissions = make(map[string]bool, len(u.Staff.Permissions))
		for k, v := range u.Staff.Permissions {
			s.Permissions[k] = v
		}
		cp.Staff = &s
	}
	return &cp
}
