package catalogo

import "sort"

// NodoArbol es un nodo del catálogo con sus hijos anidados, listo para
// servir al frontend del cotizador.
type NodoArbol struct {
	Nodo
	Hijos []NodoArbol `json:"hijos"`
}

// ConstruirArbol arma el árbol a partir de la lista plana de nodos.
// Los hijos quedan ordenados por Orden y luego por ID. Un nodo cuyo
// padre ya no existe queda fuera del árbol en lugar de romper el armado.
func ConstruirArbol(nodos []Nodo) []NodoArbol {
	porPadre := make(map[uint][]Nodo)
	var raices []Nodo
	existe := make(map[uint]bool, len(nodos))
	for _, n := range nodos {
		existe[n.ID] = true
	}

	for _, n := range nodos {
		if n.PadreID == nil {
			raices = append(raices, n)
			continue
		}
		if !existe[*n.PadreID] {
			// padre borrado: nodo huérfano, se omite
			continue
		}
		porPadre[*n.PadreID] = append(porPadre[*n.PadreID], n)
	}

	var armar func(ns []Nodo) []NodoArbol
	armar = func(ns []Nodo) []NodoArbol {
		sort.SliceStable(ns, func(i, j int) bool {
			if ns[i].Orden != ns[j].Orden {
				return ns[i].Orden < ns[j].Orden
			}
			return ns[i].ID < ns[j].ID
		})
		out := make([]NodoArbol, 0, len(ns))
		for _, n := range ns {
			out = append(out, NodoArbol{Nodo: n, Hijos: armar(porPadre[n.ID])})
		}
		return out
	}
	return armar(raices)
}
