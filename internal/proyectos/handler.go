package proyectos

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

// POST /admin/proyectos
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var p Proyecto
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if p.Titulo == "" {
		http.Error(w, "El campo 'titulo' es obligatorio", http.StatusBadRequest)
		return
	}
	p.ID = 0
	if err := h.Repo.Crear(&p); err != nil {
		http.Error(w, "Error al crear proyecto", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /proyectos — acepta ?destacado=true.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		list []Proyecto
		err  error
	)
	if r.URL.Query().Get("destacado") == "true" {
		list, err = h.Repo.ListarDestacados()
	} else {
		list, err = h.Repo.ListarTodos()
	}
	if err != nil {
		http.Error(w, "Error al buscar proyectos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /proyectos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Proyecto no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// PUT /admin/proyectos/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Proyecto no encontrado", http.StatusNotFound)
		return
	}

	var body Proyecto
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Titulo = body.Titulo
	existente.Descripcion = body.Descripcion
	existente.Ubicacion = body.Ubicacion
	existente.Anio = body.Anio
	existente.SuperficieM2 = body.SuperficieM2
	existente.Imagenes = body.Imagenes
	existente.Destacado = body.Destacado
	existente.Estado = body.Estado

	if err := h.Repo.Actualizar(existente); err != nil {
		http.Error(w, "Error al actualizar proyecto", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /admin/proyectos/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Proyecto no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Eliminar(existente); err != nil {
		http.Error(w, "Error al eliminar proyecto", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
