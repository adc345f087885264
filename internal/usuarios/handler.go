package usuarios

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/VertiaArquitectura/api-cotizador/internal/auth"
	"github.com/VertiaArquitectura/api-cotizador/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type loginRequest struct {
	Email string `json:"email"`
	Clave string `json:"clave"`
}

type crearUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Foto     string `json:"foto"`
	Clave    string `json:"clave"`
	EsAdmin  bool   `json:"esAdmin"`
}

type cambiarClaveRequest struct {
	ClaveActual string `json:"claveActual"`
	ClaveNueva  string `json:"claveNueva"`
}

// Handler encapsula DB y repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Login valida credenciales y emite el par access+refresh.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarClave(user.Hash, req.Clave) {
		http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
		return
	}

	access, refresh, err := auth.EmitirTokens(h.DB, user.ID, user.EsAdmin)
	if err != nil {
		http.Error(w, "error al generar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"accessToken":      access,
		"refreshToken":     refresh,
		"tokenType":        "Bearer",
		"debeCambiarClave": user.DebeCambiarClave,
	})
}

// Crear registra un nuevo usuario del panel (solo admin).
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Clave == "" {
		http.Error(w, "email y clave son obligatorios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashClave(req.Clave)
	if err != nil {
		http.Error(w, "error al procesar clave", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Telefono: req.Telefono,
		Foto:     req.Foto,
		Hash:     hash,
		EsAdmin:  req.EsAdmin,
	}

	if err := h.Repository.Guardar(h.DB, &u); err != nil {
		http.Error(w, "error al guardar usuario", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// Listar devuelve todos los usuarios.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "error al buscar usuarios", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID devuelve un usuario.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuario no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// Actualizar modifica los datos básicos de un usuario.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuario no encontrado", http.StatusNotFound)
		return
	}

	var req crearUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	u.Nombre = req.Nombre
	u.Apellido = req.Apellido
	u.Telefono = req.Telefono
	u.Foto = req.Foto
	u.EsAdmin = req.EsAdmin
	if req.Email != "" {
		u.Email = req.Email
	}

	if err := h.Repository.Actualizar(h.DB, u); err != nil {
		http.Error(w, "error al actualizar usuario", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// CambiarClave cambia la clave del usuario autenticado.
func (h *Handler) CambiarClave(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDDesdeContexto(r.Context())
	if !ok {
		http.Error(w, "no autenticado", http.StatusUnauthorized)
		return
	}

	var req cambiarClaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if len(req.ClaveNueva) < 8 {
		http.Error(w, "la clave nueva debe tener al menos 8 caracteres", http.StatusBadRequest)
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "usuario no encontrado", http.StatusNotFound)
		return
	}
	if !utils.VerificarClave(u.Hash, req.ClaveActual) {
		http.Error(w, "clave actual incorrecta", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashClave(req.ClaveNueva)
	if err != nil {
		http.Error(w, "error al procesar clave", http.StatusInternalServerError)
		return
	}
	u.Hash = hash
	u.DebeCambiarClave = false
	if err := h.Repository.Actualizar(h.DB, u); err != nil {
		http.Error(w, "error al actualizar usuario", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetearClave genera una clave temporal para el usuario (solo admin).
func (h *Handler) ResetearClave(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuario no encontrado", http.StatusNotFound)
		return
	}

	temporal, err := utils.GenerarClaveTemporal()
	if err != nil {
		http.Error(w, "error al generar clave temporal", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashClave(temporal)
	if err != nil {
		http.Error(w, "error al procesar clave", http.StatusInternalServerError)
		return
	}
	u.Hash = hash
	u.DebeCambiarClave = true
	if err := h.Repository.Actualizar(h.DB, u); err != nil {
		http.Error(w, "error al actualizar usuario", http.StatusInternalServerError)
		return
	}

	// la clave temporal viaja una única vez en la respuesta
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"claveTemporal": temporal})
}

// Eliminar borra un usuario (solo admin).
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "usuario no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.Eliminar(h.DB, uint(id)); err != nil {
		http.Error(w, "error al eliminar usuario", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
