package contenido

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaveConocida(t *testing.T) {
	for _, clave := range []string{ClaveHero, ClaveNosotros, ClaveServicios, ClaveParallax, ClaveProceso} {
		assert.True(t, ClaveConocida(clave), clave)
	}
	assert.False(t, ClaveConocida("footer"))
}

func TestDatosPorDefecto(t *testing.T) {
	datos, ok := DatosPorDefecto(ClaveHero)
	require.True(t, ok)
	assert.NotEmpty(t, datos["titulo"])

	_, ok = DatosPorDefecto("footer")
	assert.False(t, ok)
}
