package leads

import (
	"time"

	"gorm.io/gorm"
)

// Estados de seguimiento de un lead.
const (
	EstadoNuevo      = "Nuevo"
	EstadoContactado = "Contactado"
	EstadoCerrado    = "Cerrado"
)

// LineaGuardada es un renglón del desglose de la cotización tal como se
// congeló al enviar el lead.
type LineaGuardada struct {
	Etiqueta       string  `json:"etiqueta"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Cantidad       float64 `json:"cantidad"`
	Subtotal       float64 `json:"subtotal"`
	SinPrecio      bool    `json:"sinPrecio,omitempty"`
}

// Lead es un prospecto: datos de contacto más, opcionalmente, la
// cotización que armó en el sitio.
type Lead struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Folio    string `gorm:"size:40;uniqueIndex" json:"folio"`
	Nombre   string `gorm:"size:255;not null" json:"nombre"`
	Email    string `gorm:"size:255;not null" json:"email"`
	Telefono string `gorm:"size:50" json:"telefono"`
	Mensaje  string `json:"mensaje"`
	Origen   string `gorm:"size:100" json:"origen"`

	// selección que respaldó la cotización, si la hubo
	ServicioID  *uint   `json:"servicioId"`
	CategoriaID *uint   `json:"categoriaId"`
	Area        float64 `gorm:"not null;default:0" json:"area"`

	Total   float64         `gorm:"not null;default:0" json:"total"`
	Detalle []LineaGuardada `gorm:"type:jsonb;serializer:json" json:"detalle"`

	Estado    string         `gorm:"size:50;not null;default:'Nuevo';index" json:"estado"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate crea la tabla de leads.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lead{})
}
