package contenido

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /contenido/{clave} (público)
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	clave := mux.Vars(r)["clave"]
	if !ClaveConocida(clave) {
		http.Error(w, "Sección desconocida", http.StatusNotFound)
		return
	}
	s, err := h.Repo.BuscarPorClave(clave)
	if err != nil {
		http.Error(w, "Error al buscar sección", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// PUT /admin/contenido/{clave}
func (h *Handler) Guardar(w http.ResponseWriter, r *http.Request) {
	clave := mux.Vars(r)["clave"]
	if !ClaveConocida(clave) {
		http.Error(w, "Sección desconocida", http.StatusNotFound)
		return
	}

	var payload struct {
		Datos map[string]interface{} `json:"datos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.Datos == nil {
		http.Error(w, "El campo 'datos' es obligatorio", http.StatusBadRequest)
		return
	}

	s := Seccion{Clave: clave, Datos: payload.Datos}
	if err := h.Repo.Guardar(&s); err != nil {
		http.Error(w, "Error al guardar sección", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}
