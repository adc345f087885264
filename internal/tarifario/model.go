package tarifario

import (
	"time"

	"gorm.io/gorm"
)

// Rango es un tramo de precio dentro de un honorario: aplica a cantidades
// en [Desde, Hasta); Hasta en nil marca el tramo final abierto.
type Rango struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	HonorarioID uint     `gorm:"not null;index" json:"honorarioId"`
	Desde       float64  `gorm:"not null;default:0" json:"desde"`
	Hasta       *float64 `json:"hasta"`
	Precio      float64  `gorm:"not null;default:0" json:"precio"`
}

// Honorario es una fila del tarifario con precios por tramo de cantidad
// (superficie en m², unidades, etc.).
type Honorario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"size:255;not null" json:"nombre"`
	Nota      string    `gorm:"size:500" json:"nota,omitempty"`
	Rangos    []Rango   `gorm:"foreignKey:HonorarioID;constraint:OnDelete:CASCADE" json:"rangos"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Plan es una tarifa plana, sin tramos.
type Plan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"size:255;not null" json:"nombre"`
	Precio    float64   `gorm:"not null;default:0" json:"precio"`
	Nota      string    `gorm:"size:500" json:"nota,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate crea las tablas del tarifario.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Honorario{}, &Rango{}, &Plan{})
}
