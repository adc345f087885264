package proyectos

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(p *Proyecto) error {
	return r.DB.Create(p).Error
}

func (r *Repository) ListarTodos() ([]Proyecto, error) {
	var list []Proyecto
	err := r.DB.Order("anio DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *Repository) ListarDestacados() ([]Proyecto, error) {
	var list []Proyecto
	err := r.DB.Where("destacado = ?", true).Order("anio DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Proyecto, error) {
	var p Proyecto
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Actualizar(p *Proyecto) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Eliminar(p *Proyecto) error {
	return r.DB.Delete(p).Error
}
