package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
	"github.com/tu-usuario/imprenta-pro/internal/infrastructure/memory"
)

func TestCreate_CompletaIDYEstado(t *testing.T) {
	store := memory.NewUserStore()

	user := &entity.User{Email: "Ana@Panaderia.com", Name: "Ana", Role: entity.RoleCustomer}
	require.NoError(t, store.Create(user, "imprenta123"))

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "active", user.Status)
	assert.Equal(t, "ana@panaderia.com", user.Email, "el email se normaliza a minúsculas")
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreate_EmailDuplicado(t *testing.T) {
	store := memory.NewUserStore()
	require.NoError(t, store.Create(&entity.User{Email: "ana@x.com", Name: "Ana"}, "imprenta123"))

	err := store.Create(&entity.User{Email: "ANA@x.com", Name: "Clon"}, "otra-clave")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "el duplicado se detecta sin importar mayúsculas")
}

func TestCreate_DatosIncompletos(t *testing.T) {
	store := memory.NewUserStore()

	assert.ErrorIs(t, store.Create(&entity.User{Email: ""}, "clave"), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Create(&entity.User{Email: "ana@x.com"}, ""), domain.ErrInvalidInput)
}

func TestAuthenticate_CasosDeCredenciales(t *testing.T) {
	store := memory.NewUserStore()
	require.NoError(t, store.SeedDemoUsers())

	// Credenciales correctas.
	user, err := store.Authenticate("cliente@demo.com", "imprenta123")
	require.NoError(t, err)
	assert.Equal(t, "Clara Cliente", user.Name)

	// Password mala y email inexistente devuelven el MISMO error.
	_, errPass := store.Authenticate("cliente@demo.com", "incorrecta")
	_, errEmail := store.Authenticate("fantasma@demo.com", "imprenta123")
	assert.ErrorIs(t, errPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errEmail, domain.ErrInvalidCredentials)
}

func TestAuthenticate_CuentaInactiva(t *testing.T) {
	store := memory.NewUserStore()
	user := &entity.User{Email: "baja@x.com", Name: "Baja", Status: "suspended"}
	require.NoError(t, store.Create(user, "imprenta123"))

	_, err := store.Authenticate("baja@x.com", "imprenta123")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetByID(t *testing.T) {
	store := memory.NewUserStore()
	user := &entity.User{Email: "ana@x.com", Name: "Ana"}
	require.NoError(t, store.Create(user, "imprenta123"))

	got, err := store.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	_, err = store.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Los usuarios devueltos son copias: mutarlos no toca el registro interno.
func TestStore_DevuelveCopias(t *testing.T) {
	store := memory.NewUserStore()
	require.NoError(t, store.SeedDemoUsers())

	user, err := store.Authenticate("cliente@demo.com", "imprenta123")
	require.NoError(t, err)
	user.Name = "Pirata"
	user.Customer.City = "Ciudad Pirata"

	limpio, err := store.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clara Cliente", limpio.Name)
	assert.Equal(t, "Bogotá", limpio.Customer.City)
}

func TestSeedDemoUsers_TresCuentasConRoles(t *testing.T) {
	store := memory.NewUserStore()
	require.NoError(t, store.SeedDemoUsers())

	cliente, err := store.Authenticate("cliente@demo.com", "imprenta123")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, cliente.Role)
	require.NotNil(t, cliente.Customer)

	staff, err := store.Authenticate("taller@demo.com", "imprenta123")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, staff.Role)
	require.NotNil(t, staff.Staff)
	assert.True(t, staff.Staff.Permissions["jobs"])

	admin, err := store.Authenticate("admin@demo.com", "imprenta123")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
}
