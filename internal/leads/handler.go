package leads

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Notificador avisa de un lead nuevo por un canal externo. La llamada
// es fire-and-forget: el alta nunca falla por el aviso.
type Notificador interface {
	NuevoLead(l *Lead)
}

// Handler gestiona las rutas de leads.
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Notificador Notificador
}

func NewHandler(db *gorm.DB, notificador Notificador) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Notificador: notificador,
	}
}

// POST /leads (público)
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var dto CrearLeadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := dto.Validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	l := Lead{
		Folio:       uuid.NewString(),
		Nombre:      dto.Nombre,
		Email:       dto.Email,
		Telefono:    dto.Telefono,
		Mensaje:     dto.Mensaje,
		Origen:      dto.Origen,
		ServicioID:  dto.ServicioID,
		CategoriaID: dto.CategoriaID,
		Area:        dto.Area,
		Total:       dto.Total,
		Detalle:     dto.Detalle,
		Estado:      EstadoNuevo,
	}

	if err := h.Repository.Guardar(h.DB, &l); err != nil {
		http.Error(w, "Error al guardar lead", http.StatusInternalServerError)
		return
	}

	if h.Notificador != nil {
		go h.Notificador.NuevoLead(&l)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// GET /admin/leads — acepta ?estado= opcional.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	estado := r.URL.Query().Get("estado")

	var (
		list []Lead
		err  error
	)
	if estado != "" {
		list, err = h.Repository.ListarPorEstado(h.DB, estado)
	} else {
		list, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "Error al buscar leads", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /admin/leads/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Lead no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}

// PATCH /admin/leads/{id}/estado
func (h *Handler) ActualizarEstado(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	switch payload.Estado {
	case EstadoNuevo, EstadoContactado, EstadoCerrado:
	default:
		http.Error(w, "Estado desconocido", http.StatusBadRequest)
		return
	}

	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Lead no encontrado", http.StatusNotFound)
		return
	}
	l.Estado = payload.Estado
	if err := h.Repository.Actualizar(h.DB, l); err != nil {
		http.Error(w, "Error al actualizar lead", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}

// DELETE /admin/leads/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Lead no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.Eliminar(h.DB, uint(id)); err != nil {
		http.Error(w, "Error al eliminar lead", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
