package catalogo

import "gorm.io/gorm"

// Repository encapsula las operaciones de banco del catálogo.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(n *Nodo) error {
	return r.DB.Create(n).Error
}

func (r *Repository) ListarTodos() ([]Nodo, error) {
	var nodos []Nodo
	err := r.DB.Order("orden, id").Find(&nodos).Error
	return nodos, err
}

func (r *Repository) ListarPorNivel(nivel string) ([]Nodo, error) {
	var nodos []Nodo
	err := r.DB.Where("nivel = ?", nivel).Order("orden, id").Find(&nodos).Error
	return nodos, err
}

func (r *Repository) ListarHijos(padreID uint) ([]Nodo, error) {
	var nodos []Nodo
	err := r.DB.Where("padre_id = ?", padreID).Order("orden, id").Find(&nodos).Error
	return nodos, err
}

func (r *Repository) BuscarPorID(id uint) (*Nodo, error) {
	var n Nodo
	if err := r.DB.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) Actualizar(n *Nodo) error {
	return r.DB.Save(n).Error
}

func (r *Repository) Eliminar(n *Nodo) error {
	return r.DB.Delete(n).Error
}
