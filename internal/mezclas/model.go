package mezclas

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Mezcla reparte una superficie total entre categorías del catálogo.
// Participaciones mapea el ID de categoría (en decimal) a la fracción
// que le corresponde, para los cálculos por tramo del cotizador.
type Mezcla struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	Nombre          string             `gorm:"size:255;not null" json:"nombre"`
	Participaciones map[string]float64 `gorm:"type:jsonb;serializer:json" json:"participaciones"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// Participacion devuelve la fracción asignada a la categoría, o 0 si la
// mezcla no la contempla.
func (m Mezcla) Participacion(categoriaID uint) float64 {
	return m.Participaciones[strconv.FormatUint(uint64(categoriaID), 10)]
}

// Validar chequea que cada fracción esté en [0,1] y que la suma no
// supere 1 (con una tolerancia chica por redondeo). Una mezcla puede
// cubrir menos del total.
func (m Mezcla) Validar() error {
	const eps = 1e-9
	var suma float64
	for clave, f := range m.Participaciones {
		if _, err := strconv.ParseUint(clave, 10, 64); err != nil {
			return fmt.Errorf("clave '%s': debe ser un ID de categoría", clave)
		}
		if f < 0 || f > 1 {
			return fmt.Errorf("categoría %s: fracción fuera de [0,1]", clave)
		}
		suma += f
	}
	if suma > 1+eps {
		return fmt.Errorf("las fracciones suman %.4f, superan 1", suma)
	}
	return nil
}

// Migrate crea la tabla de mezclas.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Mezcla{})
}
