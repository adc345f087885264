package catalogo

import (
	"time"

	"gorm.io/gorm"
)

// Niveles del catálogo, de la raíz hacia las hojas.
const (
	NivelServicio   = "servicio"
	NivelCategoria  = "categoria"
	NivelEntregable = "entregable"
	NivelPartida    = "partida"
)

// ordenNiveles fija la profundidad de cada nivel dentro del árbol.
var ordenNiveles = map[string]int{
	NivelServicio:   0,
	NivelCategoria:  1,
	NivelEntregable: 2,
	NivelPartida:    3,
}

// NivelValido indica si el nivel existe en la jerarquía.
func NivelValido(nivel string) bool {
	_, ok := ordenNiveles[nivel]
	return ok
}

// EsHijoDe indica si un nodo de nivel `hijo` puede colgar de uno de
// nivel `padre` (profundidad inmediatamente superior).
func EsHijoDe(hijo, padre string) bool {
	h, ok1 := ordenNiveles[hijo]
	p, ok2 := ordenNiveles[padre]
	return ok1 && ok2 && h == p+1
}

// Nodo es una entrada del catálogo de precios: opción de servicio,
// categoría, entregable de diseño o partida de obra. Una hoja lleva un
// precio unitario directo o referencia un honorario del tarifario para
// precio por tramos; un nodo agrupador puede no llevar ninguno.
type Nodo struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Nombre         string         `gorm:"size:255;not null" json:"nombre"`
	Nivel          string         `gorm:"size:20;not null;index" json:"nivel"`
	PadreID        *uint          `gorm:"index" json:"padreId"`
	PrecioUnitario *float64       `json:"precioUnitario"`
	HonorarioID    *uint          `gorm:"index" json:"honorarioId"`
	Orden          int            `gorm:"not null;default:0" json:"orden"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate crea la tabla de nodos del catálogo.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Nodo{})
}
