package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashYVerificarClave(t *testing.T) {
	hash, err := HashClave("clave-secreta")
	require.NoError(t, err)
	assert.NotEqual(t, "clave-secreta", hash)

	assert.True(t, VerificarClave(hash, "clave-secreta"))
	assert.False(t, VerificarClave(hash, "otra-clave"))
}

func TestGenerarClaveTemporal(t *testing.T) {
	a, err := GenerarClaveTemporal()
	require.NoError(t, err)
	b, err := GenerarClaveTemporal()
	require.NoError(t, err)

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}
