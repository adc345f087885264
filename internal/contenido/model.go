package contenido

import (
	"time"

	"gorm.io/gorm"
)

// Seccion es un bloque editable del sitio público, persistido como
// documento JSON bajo una clave fija (hero, nosotros, servicios...).
type Seccion struct {
	ID        uint                   `gorm:"primaryKey" json:"id"`
	Clave     string                 `gorm:"size:50;uniqueIndex;not null" json:"clave"`
	Datos     map[string]interface{} `gorm:"type:jsonb;serializer:json" json:"datos"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// Migrate crea la tabla de secciones.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Seccion{})
}
