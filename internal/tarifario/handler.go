package tarifario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gestiona las rutas del tarifario (honorarios y planes).
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /admin/honorarios
func (h *Handler) CrearHonorario(w http.ResponseWriter, r *http.Request) {
	var dto HonorarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Nombre == "" {
		http.Error(w, "El campo 'nombre' es obligatorio", http.StatusBadRequest)
		return
	}

	rangos := dto.rangos()
	if err := ValidarRangos(rangos); err != nil {
		http.Error(w, "Rangos inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	hon := Honorario{Nombre: dto.Nombre, Nota: dto.Nota, Rangos: rangos}
	if err := h.Repo.CrearHonorario(&hon); err != nil {
		http.Error(w, "Error al crear honorario", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(hon)
}

// GET /honorarios
func (h *Handler) ListarHonorarios(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarHonorarios()
	if err != nil {
		http.Error(w, "Error al buscar honorarios", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /honorarios/{id}
func (h *Handler) BuscarHonorario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	hon, err := h.Repo.BuscarHonorario(uint(id))
	if err != nil {
		http.Error(w, "Honorario no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hon)
}

// PUT /admin/honorarios/{id}
func (h *Handler) ActualizarHonorario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	hon, err := h.Repo.BuscarHonorario(uint(id))
	if err != nil {
		http.Error(w, "Honorario no encontrado", http.StatusNotFound)
		return
	}

	var dto HonorarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	rangos := dto.rangos()
	if err := ValidarRangos(rangos); err != nil {
		http.Error(w, "Rangos inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	hon.Nombre = dto.Nombre
	hon.Nota = dto.Nota
	if err := h.Repo.ActualizarHonorario(hon, rangos); err != nil {
		http.Error(w, "Error al actualizar honorario", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hon)
}

// DELETE /admin/honorarios/{id}
func (h *Handler) EliminarHonorario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	hon, err := h.Repo.BuscarHonorario(uint(id))
	if err != nil {
		http.Error(w, "Honorario no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.EliminarHonorario(hon); err != nil {
		http.Error(w, "Error al eliminar honorario", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /admin/planes
func (h *Handler) CrearPlan(w http.ResponseWriter, r *http.Request) {
	var p Plan
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if p.Nombre == "" {
		http.Error(w, "El campo 'nombre' es obligatorio", http.StatusBadRequest)
		return
	}
	p.ID = 0
	if err := h.Repo.CrearPlan(&p); err != nil {
		http.Error(w, "Error al crear plan", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /planes
func (h *Handler) ListarPlanes(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarPlanes()
	if err != nil {
		http.Error(w, "Error al buscar planes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// PUT /admin/planes/{id}
func (h *Handler) ActualizarPlan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPlan(uint(id))
	if err != nil {
		http.Error(w, "Plan no encontrado", http.StatusNotFound)
		return
	}

	var body Plan
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	p.Nombre = body.Nombre
	p.Precio = body.Precio
	p.Nota = body.Nota
	if err := h.Repo.ActualizarPlan(p); err != nil {
		http.Error(w, "Error al actualizar plan", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// DELETE /admin/planes/{id}
func (h *Handler) EliminarPlan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPlan(uint(id))
	if err != nil {
		http.Error(w, "Plan no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.EliminarPlan(p); err != nil {
		http.Error(w, "Error al eliminar plan", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
