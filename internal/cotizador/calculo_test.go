package cotizador

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VertiaArquitectura/api-cotizador/internal/catalogo"
	"github.com/VertiaArquitectura/api-cotizador/internal/mezclas"
	"github.com/VertiaArquitectura/api-cotizador/internal/tarifario"
)

func f(v float64) *float64 { return &v }
func u(v uint) *uint       { return &v }

// snapshotDePrueba arma una foto chica pero completa: un servicio, dos
// categorías con honorario por tramos, entregables con precio directo y
// una partida con honorario sin cola abierta.
func snapshotDePrueba() *Snapshot {
	return &Snapshot{
		Nodos: map[uint]catalogo.Nodo{
			1: {ID: 1, Nombre: "Construcción llave en mano", Nivel: catalogo.NivelServicio},
			2: {ID: 2, Nombre: "Vivienda unifamiliar", Nivel: catalogo.NivelCategoria, PadreID: u(1), HonorarioID: u(1)},
			3: {ID: 3, Nombre: "Anteproyecto", Nivel: catalogo.NivelEntregable, PadreID: u(2), PrecioUnitario: f(1500)},
			4: {ID: 4, Nombre: "Proyecto ejecutivo", Nivel: catalogo.NivelEntregable, PadreID: u(2), PrecioUnitario: f(3000)},
			5: {ID: 5, Nombre: "Instalación eléctrica", Nivel: catalogo.NivelPartida, PadreID: u(4), HonorarioID: u(2)},
			6: {ID: 6, Nombre: "Local comercial", Nivel: catalogo.NivelCategoria, PadreID: u(1), HonorarioID: u(1)},
			7: {ID: 7, Nombre: "Referencia rota", Nivel: catalogo.NivelEntregable, PadreID: u(2), HonorarioID: u(99)},
		},
		Honorarios: map[uint]tarifario.Honorario{
			1: {ID: 1, Nombre: "Honorario por superficie", Rangos: []tarifario.Rango{
				{Desde: 0, Hasta: f(100), Precio: 50},
				{Desde: 100, Hasta: f(300), Precio: 45},
				{Desde: 300, Hasta: nil, Precio: 40},
			}},
			2: {ID: 2, Nombre: "Partida acotada", Rangos: []tarifario.Rango{
				{Desde: 0, Hasta: f(300), Precio: 10},
			}},
		},
		Mezclas: map[uint]mezclas.Mezcla{
			1: {ID: 1, Nombre: "Mixto comercial", Participaciones: map[string]float64{
				"2": 0.6,
				"6": 0.4,
			}},
		},
	}
}

func TestCalcularSoloPreciosDirectos(t *testing.T) {
	s := snapshotDePrueba()
	cot, err := Calcular(s, Seleccion{
		ServicioID:    1,
		EntregableIDs: []uint{3, 4},
		Area:          100,
	})
	require.NoError(t, err)

	// el servicio es agrupador: no genera renglón
	require.Len(t, cot.Lineas, 2)
	assert.Equal(t, "Anteproyecto", cot.Lineas[0].Etiqueta)
	assert.Equal(t, 1500.0, cot.Lineas[0].Subtotal)
	assert.Equal(t, 1.0, cot.Lineas[0].Cantidad)
	assert.Equal(t, "Proyecto ejecutivo", cot.Lineas[1].Etiqueta)
	assert.Equal(t, 4500.0, cot.Total)
}

func TestCalcularConTramos(t *testing.T) {
	s := snapshotDePrueba()
	cot, err := Calcular(s, Seleccion{
		ServicioID:  1,
		CategoriaID: u(2),
		Area:        200,
	})
	require.NoError(t, err)

	require.Len(t, cot.Lineas, 1)
	linea := cot.Lineas[0]
	assert.Equal(t, 45.0, linea.PrecioUnitario)
	assert.Equal(t, 200.0, linea.Cantidad)
	assert.Equal(t, 9000.0, linea.Subtotal)
	assert.False(t, linea.SinPrecio)
	assert.Equal(t, 9000.0, cot.Total)
}

func TestCalcularSuperficieCero(t *testing.T) {
	s := snapshotDePrueba()
	cot, err := Calcular(s, Seleccion{ServicioID: 1, CategoriaID: u(2), Area: 0})
	require.NoError(t, err, "superficie 0 es válida")
	require.Len(t, cot.Lineas, 1)
	assert.Equal(t, 0.0, cot.Total)
	assert.False(t, cot.Lineas[0].SinPrecio, "0 cae en el primer tramo")
}

func TestCalcularEntradaInvalida(t *testing.T) {
	s := snapshotDePrueba()

	tests := []struct {
		nombre string
		sel    Seleccion
	}{
		{"superficie negativa", Seleccion{ServicioID: 1, Area: -1}},
		{"superficie NaN", Seleccion{ServicioID: 1, Area: math.NaN()}},
		{"superficie infinita", Seleccion{ServicioID: 1, Area: math.Inf(1)}},
		{"sin servicio", Seleccion{Area: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			cot, err := Calcular(s, tt.sel)
			assert.ErrorIs(t, err, ErrEntradaInvalida)
			assert.Nil(t, cot)
		})
	}
}

func TestCalcularReferenciaColgante(t *testing.T) {
	s := snapshotDePrueba()

	// categoría borrada: aborta sin total parcial
	cot, err := Calcular(s, Seleccion{
		ServicioID:    1,
		CategoriaID:   u(999),
		EntregableIDs: []uint{3},
		Area:          100,
	})
	assert.ErrorIs(t, err, ErrNoEncontrado)
	assert.Nil(t, cot)

	// honorario borrado
	cot, err = Calcular(s, Seleccion{ServicioID: 1, EntregableIDs: []uint{7}, Area: 100})
	assert.ErrorIs(t, err, ErrNoEncontrado)
	assert.Nil(t, cot)

	// mezcla borrada
	cot, err = Calcular(s, Seleccion{ServicioID: 1, MezclaID: u(42), Area: 100})
	assert.ErrorIs(t, err, ErrNoEncontrado)
	assert.Nil(t, cot)
}

func TestCalcularSinTramoQueContengaLaCantidad(t *testing.T) {
	s := snapshotDePrueba()

	// la partida 5 tiene honorario con techo 300 y sin cola abierta:
	// con superficie 500 el renglón queda visible, con subtotal 0 y
	// marcado, y el total solo suma lo demás
	cot, err := Calcular(s, Seleccion{
		ServicioID:    1,
		EntregableIDs: []uint{3},
		PartidaIDs:    []uint{5},
		Area:          500,
	})
	require.NoError(t, err)
	require.Len(t, cot.Lineas, 2)

	sinPrecio := cot.Lineas[1]
	assert.Equal(t, "Instalación eléctrica", sinPrecio.Etiqueta)
	assert.True(t, sinPrecio.SinPrecio)
	assert.Equal(t, 0.0, sinPrecio.Subtotal)
	assert.Equal(t, 1500.0, cot.Total)
}

func TestCalcularConMezcla(t *testing.T) {
	s := snapshotDePrueba()

	// la categoría 2 participa 0.6: la cantidad efectiva es 200×0.6=120,
	// que cae en el tramo [100,300) a 45
	cot, err := Calcular(s, Seleccion{
		ServicioID:  1,
		CategoriaID: u(2),
		MezclaID:    u(1),
		Area:        200,
	})
	require.NoError(t, err)
	require.Len(t, cot.Lineas, 1)
	assert.Equal(t, 120.0, cot.Lineas[0].Cantidad)
	assert.Equal(t, 45.0, cot.Lineas[0].PrecioUnitario)
	assert.Equal(t, 5400.0, cot.Total)
}

func TestCalcularMezclaConPrecioDirecto(t *testing.T) {
	s := snapshotDePrueba()

	// con mezcla, un precio directo prorratea por la participación de
	// su categoría: 1500 × 0.6
	cot, err := Calcular(s, Seleccion{
		ServicioID:    1,
		EntregableIDs: []uint{3},
		MezclaID:      u(1),
		Area:          200,
	})
	require.NoError(t, err)
	require.Len(t, cot.Lineas, 1)
	assert.Equal(t, 0.6, cot.Lineas[0].Cantidad)
	assert.Equal(t, 900.0, cot.Total)
}

func TestCalcularMezclaSubePorLosPadres(t *testing.T) {
	s := snapshotDePrueba()

	// la partida 5 cuelga de entregable 4 → categoría 2: hereda la
	// participación 0.6 de su categoría ancestro
	cot, err := Calcular(s, Seleccion{
		ServicioID: 1,
		PartidaIDs: []uint{5},
		MezclaID:   u(1),
		Area:       400,
	})
	require.NoError(t, err)
	require.Len(t, cot.Lineas, 1)
	// 400×0.6 = 240, dentro del techo 300 de la partida
	assert.Equal(t, 240.0, cot.Lineas[0].Cantidad)
	assert.Equal(t, 2400.0, cot.Total)
}

func TestCalcularIdempotente(t *testing.T) {
	s := snapshotDePrueba()
	sel := Seleccion{
		ServicioID:    1,
		CategoriaID:   u(2),
		EntregableIDs: []uint{3, 4},
		PartidaIDs:    []uint{5},
		Area:          250,
	}

	primera, err := Calcular(s, sel)
	require.NoError(t, err)
	segunda, err := Calcular(s, sel)
	require.NoError(t, err)

	assert.Equal(t, primera, segunda)
}

func TestCalcularOrdenEstableDelDesglose(t *testing.T) {
	s := snapshotDePrueba()
	cot, err := Calcular(s, Seleccion{
		ServicioID:    1,
		CategoriaID:   u(2),
		EntregableIDs: []uint{4, 3},
		Area:          100,
	})
	require.NoError(t, err)

	etiquetas := make([]string, 0, len(cot.Lineas))
	for _, l := range cot.Lineas {
		etiquetas = append(etiquetas, l.Etiqueta)
	}
	// categoría primero, entregables en el orden en que llegaron
	assert.Equal(t, []string{"Vivienda unifamiliar", "Proyecto ejecutivo", "Anteproyecto"}, etiquetas)
}

func TestCalcularNoMutaElSnapshot(t *testing.T) {
	s := snapshotDePrueba()
	antes := len(s.Nodos)

	_, err := Calcular(s, Seleccion{ServicioID: 1, CategoriaID: u(2), Area: 150})
	require.NoError(t, err)

	assert.Len(t, s.Nodos, antes)
	assert.Equal(t, 45.0, s.Honorarios[1].Rangos[1].Precio)
}

func TestErroresSonValores(t *testing.T) {
	s := snapshotDePrueba()
	_, err := Calcular(s, Seleccion{ServicioID: 999, Area: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoEncontrado))
	assert.Contains(t, err.Error(), "999")
}
