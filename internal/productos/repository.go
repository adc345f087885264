// internal/productos/repository.go
package productos

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(p *Producto) error {
	return r.DB.Create(p).Error
}

func (r *Repository) ListarTodos() ([]Producto, error) {
	var productos []Producto
	err := r.DB.Order("orden, id").Find(&productos).Error
	return productos, err
}

func (r *Repository) ListarActivos() ([]Producto, error) {
	var productos []Producto
	err := r.DB.Where("activo = ?", true).Order("orden, id").Find(&productos).Error
	return productos, err
}

func (r *Repository) BuscarPorID(id uint) (*Producto, error) {
	var p Producto
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Actualizar(p *Producto) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Eliminar(p *Producto) error {
	return r.DB.Delete(p).Error
}
