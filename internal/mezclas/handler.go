package mezclas

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /admin/mezclas
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var m Mezcla
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if m.Nombre == "" {
		http.Error(w, "El campo 'nombre' es obligatorio", http.StatusBadRequest)
		return
	}
	if err := m.Validar(); err != nil {
		http.Error(w, "Participaciones inválidas: "+err.Error(), http.StatusBadRequest)
		return
	}
	m.ID = 0
	if err := h.Repo.Crear(&m); err != nil {
		http.Error(w, "Error al crear mezcla", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// GET /mezclas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "Error al buscar mezclas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /mezclas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Mezcla no encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// PUT /admin/mezclas/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Mezcla no encontrada", http.StatusNotFound)
		return
	}

	var body Mezcla
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := body.Validar(); err != nil {
		http.Error(w, "Participaciones inválidas: "+err.Error(), http.StatusBadRequest)
		return
	}

	m.Nombre = body.Nombre
	m.Participaciones = body.Participaciones
	if err := h.Repo.Actualizar(m); err != nil {
		http.Error(w, "Error al actualizar mezcla", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// DELETE /admin/mezclas/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Mezcla no encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repo.Eliminar(m); err != nil {
		http.Error(w, "Error al eliminar mezcla", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
