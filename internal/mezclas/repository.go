package mezclas

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(m *Mezcla) error {
	return r.DB.Create(m).Error
}

func (r *Repository) ListarTodas() ([]Mezcla, error) {
	var list []Mezcla
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Mezcla, error) {
	var m Mezcla
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Actualizar(m *Mezcla) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Eliminar(m *Mezcla) error {
	return r.DB.Delete(m).Error
}
