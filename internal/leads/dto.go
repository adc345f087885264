package leads

import "strings"

// CrearLeadDTO es el payload público de alta de un lead. Los campos de
// cotización son opcionales: un lead puede llegar solo del formulario
// de contacto.
type CrearLeadDTO struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Mensaje  string `json:"mensaje"`
	Origen   string `json:"origen"`

	ServicioID  *uint           `json:"servicioId"`
	CategoriaID *uint           `json:"categoriaId"`
	Area        float64         `json:"area"`
	Total       float64         `json:"total"`
	Detalle     []LineaGuardada `json:"detalle"`
}

// Validar exige al menos nombre y un medio de contacto.
func (d CrearLeadDTO) Validar() string {
	if strings.TrimSpace(d.Nombre) == "" {
		return "El campo 'nombre' es obligatorio"
	}
	if strings.TrimSpace(d.Email) == "" && strings.TrimSpace(d.Telefono) == "" {
		return "Se requiere email o teléfono"
	}
	if d.Email != "" && !strings.Contains(d.Email, "@") {
		return "Email inválido"
	}
	return ""
}
