package cotizador

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Handler expone el cálculo de cotizaciones por HTTP.
type Handler struct {
	Cargador CargadorSnapshot
}

func NewHandler(cargador CargadorSnapshot) *Handler {
	return &Handler{Cargador: cargador}
}

// POST /cotizaciones
func (h *Handler) Calcular(w http.ResponseWriter, r *http.Request) {
	var sel Seleccion
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	snap, err := h.Cargador.Cargar()
	if err != nil {
		http.Error(w, "Error al cargar el catálogo", http.StatusInternalServerError)
		return
	}

	cot, err := Calcular(snap, sel)
	if err != nil {
		switch {
		case errors.Is(err, ErrEntradaInvalida):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, ErrNoEncontrado):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "Error al calcular la cotización", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cot)
}
