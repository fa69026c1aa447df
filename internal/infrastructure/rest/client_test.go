package rest_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/imprenta-pro/internal/application/dto"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
	"github.com/tu-usuario/imprenta-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/imprenta-pro/internal/infrastructure/rest"
	apphttp "github.com/tu-usuario/imprenta-pro/internal/interfaces/http"
)

// startBackend levanta el backend simulado en un puerto efímero y devuelve un
// cliente apuntándole. El servidor se apaga al terminar el test.
func startBackend(t *testing.T) *rest.Client {
	t.Helper()

	users := memory.NewUserStore()
	require.NoError(t, users.SeedDemoUsers())

	revoked := apphttp.NewRevokedTokens()
	jwtCfg := apphttp.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 15, Issuer: "imprenta-pro-test"}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	apphttp.Router(app, apphttp.RouterDeps{
		Auth:      apphttp.NewAuthHandler(users, revoked, jwtCfg),
		Config:    apphttp.NewConfigHandler(entity.DefaultFeatureFlags(), entity.DefaultSystemConfig()),
		Revoked:   revoked,
		JWTSecret: jwtCfg.Secret,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "abrir puerto efímero")
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return rest.New("http://"+ln.Addr().String(), 5*time.Second, nil)
}

func TestClient_LoginExitoso(t *testing.T) {
	client := startBackend(t)

	out, err := client.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@demo.com",
		Password: "imprenta123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "cliente@demo.com", out.User.Email)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
	require.NotNil(t, out.User.Customer, "el perfil de cliente viaja en la respuesta")
}

// El `message` del cuerpo de error debe llegar intacto hasta UserMessage.
func TestClient_LoginRechazadoExtraeMensaje(t *testing.T) {
	client := startBackend(t)

	_, err := client.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@demo.com",
		Password: "contraseña-mala",
	})
	require.Error(t, err)

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
	assert.Equal(t, "credenciales inválidas", apiErr.UserMessage())
}

func TestClient_MeConBearer(t *testing.T) {
	client := startBackend(t)
	ctx := context.Background()

	out, err := client.Login(ctx, dto.LoginRequest{Email: "taller@demo.com", Password: "imprenta123"})
	require.NoError(t, err)

	me, err := client.Me(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, me.ID)
	assert.Equal(t, entity.RoleStaff, me.Role)
	require.NotNil(t, me.Staff, "el perfil de empleado viaja en me()")
}

func TestClient_MeSinTokenDevuelve401(t *testing.T) {
	client := startBackend(t)

	_, err := client.Me(context.Background(), "")
	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "MISSING_TOKEN", apiErr.Code)
}

// Tras logout el token queda revocado: me() con ese token debe fallar.
func TestClient_LogoutRevocaElToken(t *testing.T) {
	client := startBackend(t)
	ctx := context.Background()

	out, err := client.Login(ctx, dto.LoginRequest{Email: "cliente@demo.com", Password: "imprenta123"})
	require.NoError(t, err)

	require.NoError(t, client.Logout(ctx, out.Token))

	_, err = client.Me(ctx, out.Token)
	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}

func TestClient_RegisterCreaCliente(t *testing.T) {
	client := startBackend(t)

	out, err := client.Register(context.Background(), dto.RegisterRequest{
		Email:    "nueva@imprenta.com",
		Password: "imprenta123",
		Name:     "Nueva Cliente",
		Customer: &dto.CustomerProfileDTO{CompanyName: "Panadería El Trigal"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleCustomer, out.User.Role, "el registro público siempre crea clientes")
	require.NotNil(t, out.User.Customer)
	assert.Equal(t, "Panadería El Trigal", out.User.Customer.CompanyName)
}

func TestClient_RegisterEmailDuplicado(t *testing.T) {
	client := startBackend(t)

	_, err := client.Register(context.Background(), dto.RegisterRequest{
		Email:    "cliente@demo.com", // ya sembrado
		Password: "imprenta123",
		Name:     "Duplicada",
	})
	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	assert.Equal(t, "EMAIL_EXISTS", apiErr.Code)
}

func TestClient_FetchAppConfig(t *testing.T) {
	client := startBackend(t)

	out, err := client.FetchAppConfig(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Flags.QuoteBuilder)
	assert.Equal(t, "Imprenta Pro", out.System.CompanyName)
	assert.True(t, out.System.TaxRate.Equal(entity.DefaultSystemConfig().TaxRate))
}
