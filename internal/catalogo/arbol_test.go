package catalogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u(v uint) *uint { return &v }

func TestConstruirArbol(t *testing.T) {
	nodos := []Nodo{
		{ID: 1, Nombre: "Diseño", Nivel: NivelServicio, Orden: 2},
		{ID: 2, Nombre: "Construcción", Nivel: NivelServicio, Orden: 1},
		{ID: 3, Nombre: "Vivienda", Nivel: NivelCategoria, PadreID: u(2), Orden: 1},
		{ID: 4, Nombre: "Comercio", Nivel: NivelCategoria, PadreID: u(2), Orden: 1},
		{ID: 5, Nombre: "Anteproyecto", Nivel: NivelEntregable, PadreID: u(3)},
	}

	arbol := ConstruirArbol(nodos)
	require.Len(t, arbol, 2)

	// raíces ordenadas por Orden
	assert.Equal(t, "Construcción", arbol[0].Nombre)
	assert.Equal(t, "Diseño", arbol[1].Nombre)

	// mismo Orden: desempata el ID
	hijos := arbol[0].Hijos
	require.Len(t, hijos, 2)
	assert.Equal(t, "Vivienda", hijos[0].Nombre)
	assert.Equal(t, "Comercio", hijos[1].Nombre)

	require.Len(t, hijos[0].Hijos, 1)
	assert.Equal(t, "Anteproyecto", hijos[0].Hijos[0].Nombre)
}

func TestConstruirArbolOmiteHuerfanos(t *testing.T) {
	nodos := []Nodo{
		{ID: 1, Nombre: "Construcción", Nivel: NivelServicio},
		{ID: 3, Nombre: "Huérfano", Nivel: NivelCategoria, PadreID: u(99)},
	}

	arbol := ConstruirArbol(nodos)
	require.Len(t, arbol, 1)
	assert.Empty(t, arbol[0].Hijos)
}

func TestConstruirArbolVacio(t *testing.T) {
	assert.Empty(t, ConstruirArbol(nil))
}

func TestNiveles(t *testing.T) {
	assert.True(t, NivelValido(NivelServicio))
	assert.True(t, NivelValido(NivelPartida))
	assert.False(t, NivelValido("piso"))

	assert.True(t, EsHijoDe(NivelCategoria, NivelServicio))
	assert.True(t, EsHijoDe(NivelPartida, NivelEntregable))
	assert.False(t, EsHijoDe(NivelPartida, NivelCategoria))
	assert.False(t, EsHijoDe(NivelServicio, NivelPartida))
}
