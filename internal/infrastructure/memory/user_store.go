// Package memory almacena los usuarios del backend simulado de desarrollo.
// Todo vive en memoria: reiniciar el proceso vuelve a los usuarios semilla.
package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

type userRecord struct {
	user *entity.User
	hash []byte
}

// UserStore repositorio en memoria de usuarios con password bcrypt.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*userRecord
	byID    map[string]*userRecord
}

// NewUserStore construye el store vacío.
func NewUserStore() *UserStore {
	return &UserStore{
		byEmail: map[string]*userRecord{},
		byID:    map[string]*userRecord{},
	}
}

// Create registra un usuario nuevo. Completa ID/fechas si faltan y hashea el
// password. Devuelve ErrEmailAlreadyExists si el email ya está tomado.
func (s *UserStore) Create(user *entity.User, password string) error {
	email := strings.ToLower(strings.TrimSpace(user.Email))
	if email == "" || password == "" {
		return domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[email]; exists {
		return domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Status == "" {
		user.Status = "active"
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	user.Email = email

	rec := &userRecord{user: user.Clone(), hash: hash}
	s.byEmail[email] = rec
	s.byID[user.ID] = rec
	return nil
}

// Authenticate verifica email+password. Devuelve ErrInvalidCredentials sin
// distinguir "no existe" de "password incorrecto", y ErrForbidden si la
// cuenta no está activa.
func (s *UserStore) Authenticate(email, password string) (*entity.User, error) {
	s.mu.RLock()
	rec, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(rec.hash, []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if rec.user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return rec.user.Clone(), nil
}

// GetByID devuelve el usuario o ErrNotFound.
func (s *UserStore) GetByID(id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec.user.Clone(), nil
}

// SeedDemoUsers carga las tres cuentas de demostración (cliente, empleado,
// admin), todas con password "imprenta123".
func (s *UserStore) SeedDemoUsers() error {
	demo := []*entity.User{
		{
			Email: "cliente@demo.com",
			Name:  "Clara Cliente",
			Phone: "+57 300 000 0001",
			Role:  entity.RoleCustomer,
			Customer: &entity.CustomerProfile{
				CompanyName:      "Café La Esquina",
				TaxID:            "901234567",
				BillingAddress:   "Calle 10 # 5-23",
				City:             "Bogotá",
				PreferredContact: "email",
			},
		},
		{
			Email: "taller@demo.com",
			Name:  "Samuel Staff",
			Role:  entity.RoleStaff,
			Staff: &entity.StaffProfile{
				Position: "Operario de impresión",
				Permissions: map[string]bool{
					"quotes": true,
					"orders": true,
					"jobs":   true,
				},
			},
		},
		{
			Email: "admin@demo.com",
			Name:  "Ana Admin",
			Role:  entity.RoleAdmin,
			Staff: &entity.StaffProfile{
				Position: "Administración",
				Permissions: map[string]bool{
					"quotes":      true,
					"orders":      true,
					"jobs":        true,
					"inventory":   true,
					"admin_panel": true,
				},
			},
		},
	}
	for _, u := range demo {
		if err := s.Create(u, "imprenta123"); err != nil {
			return err
		}
	}
	return nil
}
