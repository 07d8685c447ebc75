package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/panel-acib/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestDecode_SinSecret_ExtraeSubject(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ana@acib.com", 60)
	require.NoError(t, err)

	decoded, err := pkgjwt.Decode("", tok)
	require.NoError(t, err)
	assert.Equal(t, "ana@acib.com", decoded.Subject)
	assert.False(t, decoded.ExpiresAt.IsZero())
}

func TestDecode_ConSecret_ValidaFirma(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ana@acib.com", 60)
	require.NoError(t, err)

	decoded, err := pkgjwt.Decode(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "ana@acib.com", decoded.Subject)

	_, err = pkgjwt.Decode("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestDecode_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ana@acib.com", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Decode("", tok)
	assert.Error(t, err, "token expirado debe rechazarse aun sin verificar firma")

	_, err = pkgjwt.Decode(testSecret, tok)
	assert.Error(t, err)
}

func TestDecode_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Decode("", "token.invalido.aqui")
	assert.Error(t, err)

	_, err = pkgjwt.Decode("", "")
	assert.Error(t, err)
}
