package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/imprenta-pro/pkg/jwt"
)

const (
	testSecret = "super-secret-for-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "imprenta-pro-test"
)

func TestGenerateYParse_ViajeRedondo(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testUserID, "STAFF", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "STAFF", role)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "ADMIN", testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testUserID, "ADMIN", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", token)
	assert.Error(t, err, "un token firmado con otro secret no debe validar")
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testUserID, "CUSTOMER", testIssuer, -5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, token)
	assert.Error(t, err, "un token con expiración en el pasado debe rechazarse")
}

func TestParse_Basura(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "no.es.un.jwt")
	assert.Error(t, err)
}
