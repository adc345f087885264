package proyectos

import (
	"time"

	"gorm.io/gorm"
)

// Estados de avance de una obra del portfolio.
const (
	EstadoEnObra     = "En Obra"
	EstadoTerminado  = "Terminado"
	EstadoProyectado = "Proyectado"
)

// Proyecto es una obra del estudio publicada en el portfolio del sitio.
type Proyecto struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Titulo       string  `gorm:"size:255;not null" json:"titulo"`
	Descripcion  string  `json:"descripcion"`
	Ubicacion    string  `gorm:"size:255" json:"ubicacion"`
	Anio         int     `json:"anio"`
	SuperficieM2 float64 `gorm:"not null;default:0" json:"superficieM2"`

	// galería de imágenes en JSONB
	Imagenes []string `gorm:"type:jsonb;serializer:json" json:"imagenes"`

	Destacado bool           `gorm:"not null;default:false;index" json:"destacado"`
	Estado    string         `gorm:"size:50" json:"estado"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate crea la tabla de proyectos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Proyecto{})
}
