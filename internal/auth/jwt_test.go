package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerarYValidarToken(t *testing.T) {
	require.NoError(t, Init("secreto-de-prueba"))

	token, err := GenerarToken(7, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.True(t, claims.EsAdmin)
}

func TestValidarTokenAjeno(t *testing.T) {
	require.NoError(t, Init("secreto-de-prueba"))
	token, err := GenerarToken(7, false)
	require.NoError(t, err)

	// firmado con otro secreto: debe rechazarse
	require.NoError(t, Init("otro-secreto"))
	_, err = ValidarToken(token)
	assert.Error(t, err)
}

func TestValidarBasura(t *testing.T) {
	require.NoError(t, Init("secreto-de-prueba"))
	_, err := ValidarToken("no-es-un-jwt")
	assert.Error(t, err)
}

func TestInitSinSecreto(t *testing.T) {
	assert.Error(t, Init(""))
}
