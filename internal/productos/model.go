// internal/productos/model.go
package productos

import (
	"time"

	"gorm.io/gorm"
)

// Producto es un ítem comercial del sitio (paquetes de servicio,
// materiales destacados) administrable desde el panel.
type Producto struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nombre      string    `gorm:"size:255;not null" json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Imagen      string    `gorm:"size:500" json:"imagen"`
	Precio      float64   `gorm:"not null;default:0" json:"precio"`
	Activo      bool      `gorm:"not null;default:false" json:"activo"`
	Orden       int       `gorm:"not null;default:0" json:"orden"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Migrate crea la tabla de productos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Producto{})
}
