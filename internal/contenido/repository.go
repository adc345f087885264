package contenido

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorClave devuelve la sección guardada o, si nadie la editó
// todavía, el contenido de fábrica para esa clave.
func (r *Repository) BuscarPorClave(clave string) (*Seccion, error) {
	var s Seccion
	err := r.DB.Where("clave = ?", clave).First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	datos, ok := DatosPorDefecto(clave)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &Seccion{Clave: clave, Datos: datos}, nil
}

// Guardar inserta o actualiza la sección por su clave.
func (r *Repository) Guardar(s *Seccion) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clave"}},
		DoUpdates: clause.AssignmentColumns([]string{"datos", "updated_at"}),
	}).Create(s).Error
}
