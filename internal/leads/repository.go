package leads

import "gorm.io/gorm"

type Repository interface {
	Guardar(db *gorm.DB, l *Lead) error
	ListarTodos(db *gorm.DB) ([]Lead, error)
	ListarPorEstado(db *gorm.DB, estado string) ([]Lead, error)
	BuscarPorID(db *gorm.DB, id uint) (*Lead, error)
	Actualizar(db *gorm.DB, l *Lead) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, l *Lead) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Lead, error) {
	var list []Lead
	err := db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorEstado(db *gorm.DB, estado string) ([]Lead, error) {
	var list []Lead
	err := db.Where("estado = ?", estado).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Lead, error) {
	var l Lead
	if err := db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, l *Lead) error {
	return db.Save(l).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Lead{}, id).Error
}
