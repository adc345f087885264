package cotizador

import (
	"fmt"
	"math"

	"github.com/VertiaArquitectura/api-cotizador/internal/catalogo"
	"github.com/VertiaArquitectura/api-cotizador/internal/tarifario"
)

// Seleccion es la elección del usuario en los cuatro niveles del
// catálogo más la superficie declarada. Vive solo durante una sesión de
// cotización; no se persiste salvo que se guarde como lead.
type Seleccion struct {
	ServicioID    uint    `json:"servicioId"`
	CategoriaID   *uint   `json:"categoriaId"`
	EntregableIDs []uint  `json:"entregableIds"`
	PartidaIDs    []uint  `json:"partidaIds"`
	MezclaID      *uint   `json:"mezclaId"`
	Area          float64 `json:"area"`
}

// Linea es un renglón del desglose. SinPrecio marca una selección
// válida para la que ningún tramo del honorario contiene la cantidad:
// el renglón queda visible con subtotal 0 para que el total nunca
// mienta por omisión.
type Linea struct {
	NodoID         uint    `json:"nodoId"`
	Etiqueta       string  `json:"etiqueta"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Cantidad       float64 `json:"cantidad"`
	Subtotal       float64 `json:"subtotal"`
	SinPrecio      bool    `json:"sinPrecio,omitempty"`
}

// Cotizacion es el resultado de un cálculo: desglose ordenado más total.
// Se construye fresca en cada cálculo y se descarta salvo que el
// usuario la envíe como lead.
type Cotizacion struct {
	Lineas []Linea `json:"lineas"`
	Total  float64 `json:"total"`
}

// Calcular resuelve la selección contra la foto de catálogo/tarifario y
// devuelve el desglose con su total. Es una función pura de sus
// entradas: no toca banco ni estado compartido, y con la misma foto y
// la misma selección el resultado es idéntico.
//
// Reglas:
//   - la superficie debe ser finita y no negativa (0 es válido);
//   - el servicio es obligatorio; los demás niveles, opcionales;
//   - toda referencia colgante (nodo, honorario o mezcla inexistente)
//     aborta con ErrNoEncontrado, sin total parcial;
//   - un nodo con precio unitario directo aporta precio × cantidad,
//     con cantidad 1, o la participación de su categoría cuando aplica
//     una mezcla;
//   - un nodo con honorario aporta precio del tramo × cantidad, donde
//     la cantidad es la superficie ajustada por la participación de su
//     categoría cuando aplica una mezcla;
//   - sin tramo que contenga la cantidad, el renglón sale con
//     SinPrecio y subtotal 0;
//   - un nodo sin precio ni honorario (agrupador) no genera renglón.
func Calcular(s *Snapshot, sel Seleccion) (*Cotizacion, error) {
	if math.IsNaN(sel.Area) || math.IsInf(sel.Area, 0) {
		return nil, fmt.Errorf("superficie no finita: %w", ErrEntradaInvalida)
	}
	if sel.Area < 0 {
		return nil, fmt.Errorf("superficie negativa: %w", ErrEntradaInvalida)
	}
	if sel.ServicioID == 0 {
		return nil, fmt.Errorf("se requiere un servicio: %w", ErrEntradaInvalida)
	}

	var mezcla *mezclaAplicada
	if sel.MezclaID != nil {
		m, ok := s.Mezclas[*sel.MezclaID]
		if !ok {
			return nil, fmt.Errorf("mezcla %d: %w", *sel.MezclaID, ErrNoEncontrado)
		}
		mezcla = &mezclaAplicada{participacion: m.Participacion}
	}

	// Orden estable del desglose: servicio, categoría, entregables y
	// partidas en el orden en que llegaron.
	ids := make([]uint, 0, 2+len(sel.EntregableIDs)+len(sel.PartidaIDs))
	ids = append(ids, sel.ServicioID)
	if sel.CategoriaID != nil {
		ids = append(ids, *sel.CategoriaID)
	}
	ids = append(ids, sel.EntregableIDs...)
	ids = append(ids, sel.PartidaIDs...)

	// Primero se valida toda referencia; una colgante aborta sin
	// resultado parcial.
	nodos := make([]catalogo.Nodo, 0, len(ids))
	for _, id := range ids {
		n, ok := s.Nodos[id]
		if !ok {
			return nil, fmt.Errorf("nodo %d: %w", id, ErrNoEncontrado)
		}
		nodos = append(nodos, n)
	}

	cot := &Cotizacion{Lineas: []Linea{}}
	for _, n := range nodos {
		linea, aporta, err := lineaDe(s, n, sel.Area, mezcla)
		if err != nil {
			return nil, err
		}
		if !aporta {
			continue
		}
		cot.Lineas = append(cot.Lineas, linea)
		cot.Total += linea.Subtotal
	}
	return cot, nil
}

type mezclaAplicada struct {
	participacion func(categoriaID uint) float64
}

// lineaDe arma el renglón de un nodo seleccionado. El segundo valor es
// false cuando el nodo es un agrupador sin datos de precio.
func lineaDe(s *Snapshot, n catalogo.Nodo, area float64, mezcla *mezclaAplicada) (Linea, bool, error) {
	// el precio directo manda sobre la referencia al tarifario
	if n.PrecioUnitario != nil {
		precio := *n.PrecioUnitario
		cantidad := 1.0
		if mezcla != nil {
			if catID, ok := categoriaAncestro(s, n); ok {
				cantidad = mezcla.participacion(catID)
			}
		}
		return Linea{
			NodoID:         n.ID,
			Etiqueta:       n.Nombre,
			PrecioUnitario: precio,
			Cantidad:       cantidad,
			Subtotal:       precio * cantidad,
		}, true, nil
	}

	if n.HonorarioID == nil {
		return Linea{}, false, nil
	}

	hon, ok := s.Honorarios[*n.HonorarioID]
	if !ok {
		return Linea{}, false, fmt.Errorf("honorario %d: %w", *n.HonorarioID, ErrNoEncontrado)
	}

	cantidad := area
	if mezcla != nil {
		if catID, ok := categoriaAncestro(s, n); ok {
			cantidad = area * mezcla.participacion(catID)
		}
	}

	rango := tarifario.ResolverRango(hon.Rangos, cantidad)
	if rango == nil {
		// selección válida pero ningún tramo contiene la cantidad
		return Linea{
			NodoID:    n.ID,
			Etiqueta:  n.Nombre,
			Cantidad:  cantidad,
			SinPrecio: true,
		}, true, nil
	}

	return Linea{
		NodoID:         n.ID,
		Etiqueta:       n.Nombre,
		PrecioUnitario: rango.Precio,
		Cantidad:       cantidad,
		Subtotal:       rango.Precio * cantidad,
	}, true, nil
}

// categoriaAncestro sube por los padres hasta el nivel categoría. El
// corte por profundidad cubre el caso degenerado de un ciclo de padres
// cargado por error.
func categoriaAncestro(s *Snapshot, n catalogo.Nodo) (uint, bool) {
	actual := n
	for i := 0; i < 8; i++ {
		if actual.Nivel == catalogo.NivelCategoria {
			return actual.ID, true
		}
		if actual.PadreID == nil {
			return 0, false
		}
		padre, ok := s.Nodos[*actual.PadreID]
		if !ok {
			return 0, false
		}
		actual = padre
	}
	return 0, false
}
