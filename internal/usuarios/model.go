package usuarios

import (
	"time"

	"gorm.io/gorm"
)

// Usuario es una cuenta del personal con acceso al panel de
// administración.
type Usuario struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Nombre           string    `gorm:"size:100;not null" json:"nombre"`
	Apellido         string    `gorm:"size:100" json:"apellido"`
	Email            string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefono         string    `gorm:"size:50" json:"telefono"`
	Foto             string    `gorm:"size:500" json:"foto"`
	Hash             string    `gorm:"size:255;not null" json:"-"`
	EsAdmin          bool      `gorm:"default:false" json:"esAdmin"`
	DebeCambiarClave bool      `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Migrate crea la tabla de usuarios.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
