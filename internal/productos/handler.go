// internal/productos/handler.go
package productos

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

// POST /admin/productos
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var p Producto
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if p.Nombre == "" {
		http.Error(w, "El campo 'nombre' es obligatorio", http.StatusBadRequest)
		return
	}
	p.ID = 0
	if err := h.Repo.Crear(&p); err != nil {
		http.Error(w, "Error al crear producto", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /productos (público: solo activos) y /admin/productos (?todos=true)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		productos []Producto
		err       error
	)
	if r.URL.Query().Get("todos") == "true" {
		productos, err = h.Repo.ListarTodos()
	} else {
		productos, err = h.Repo.ListarActivos()
	}
	if err != nil {
		http.Error(w, "Error al buscar productos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(productos)
}

// GET /productos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Producto no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// PUT /admin/productos/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Producto no encontrado", http.StatusNotFound)
		return
	}

	var body Producto
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Nombre = body.Nombre
	existente.Descripcion = body.Descripcion
	existente.Imagen = body.Imagen
	existente.Precio = body.Precio
	existente.Activo = body.Activo
	existente.Orden = body.Orden

	if err := h.Repo.Actualizar(existente); err != nil {
		http.Error(w, "Error al actualizar producto", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /admin/productos/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Producto no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Eliminar(existente); err != nil {
		http.Error(w, "Error al eliminar producto", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
