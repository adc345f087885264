package catalogo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gestiona las rutas del catálogo.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type nodoRequest struct {
	Nombre         string   `json:"nombre"`
	Nivel          string   `json:"nivel"`
	PadreID        *uint    `json:"padreId"`
	PrecioUnitario *float64 `json:"precioUnitario"`
	HonorarioID    *uint    `json:"honorarioId"`
	Orden          int      `json:"orden"`
}

// validar chequea nombre, nivel y coherencia nivel/padre contra el banco.
func (h *Handler) validar(req nodoRequest) (string, bool) {
	if req.Nombre == "" {
		return "El campo 'nombre' es obligatorio", false
	}
	if !NivelValido(req.Nivel) {
		return "Nivel desconocido", false
	}
	if req.Nivel == NivelServicio {
		if req.PadreID != nil {
			return "Un servicio no puede tener padre", false
		}
		return "", true
	}
	if req.PadreID == nil {
		return "El nivel '" + req.Nivel + "' requiere un padre", false
	}
	padre, err := h.Repo.BuscarPorID(*req.PadreID)
	if err != nil {
		return "Padre no encontrado", false
	}
	if !EsHijoDe(req.Nivel, padre.Nivel) {
		return "El nivel '" + req.Nivel + "' no puede colgar de '" + padre.Nivel + "'", false
	}
	return "", true
}

// POST /admin/catalogo
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req nodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg, ok := h.validar(req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	n := Nodo{
		Nombre:         req.Nombre,
		Nivel:          req.Nivel,
		PadreID:        req.PadreID,
		PrecioUnitario: req.PrecioUnitario,
		HonorarioID:    req.HonorarioID,
		Orden:          req.Orden,
	}
	if err := h.Repo.Crear(&n); err != nil {
		http.Error(w, "Error al crear nodo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(n)
}

// GET /catalogo/arbol
func (h *Handler) Arbol(w http.ResponseWriter, r *http.Request) {
	nodos, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Error al buscar catálogo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ConstruirArbol(nodos))
}

// GET /catalogo — lista plana; acepta ?nivel= y ?padre= opcionales.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		nodos []Nodo
		err   error
	)
	if padre := r.URL.Query().Get("padre"); padre != "" {
		id, convErr := strconv.Atoi(padre)
		if convErr != nil {
			http.Error(w, "Parámetro 'padre' inválido", http.StatusBadRequest)
			return
		}
		nodos, err = h.Repo.ListarHijos(uint(id))
	} else if nivel := r.URL.Query().Get("nivel"); nivel != "" {
		if !NivelValido(nivel) {
			http.Error(w, "Nivel desconocido", http.StatusBadRequest)
			return
		}
		nodos, err = h.Repo.ListarPorNivel(nivel)
	} else {
		nodos, err = h.Repo.ListarTodos()
	}
	if err != nil {
		http.Error(w, "Error al buscar catálogo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nodos)
}

// GET /catalogo/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	n, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Nodo no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(n)
}

// PUT /admin/catalogo/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	n, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Nodo no encontrado", http.StatusNotFound)
		return
	}

	var req nodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Nivel == "" {
		req.Nivel = n.Nivel
	}
	if msg, ok := h.validar(req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	n.Nombre = req.Nombre
	n.Nivel = req.Nivel
	n.PadreID = req.PadreID
	n.PrecioUnitario = req.PrecioUnitario
	n.HonorarioID = req.HonorarioID
	n.Orden = req.Orden

	if err := h.Repo.Actualizar(n); err != nil {
		http.Error(w, "Error al actualizar nodo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(n)
}

// DELETE /admin/catalogo/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	n, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Nodo no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Eliminar(n); err != nil {
		http.Error(w, "Error al eliminar nodo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
