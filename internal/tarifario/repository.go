package tarifario

import (
	"gorm.io/gorm"
)

// Repository encapsula las operaciones de banco del tarifario.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func preloadRangos(db *gorm.DB) *gorm.DB {
	return db.Preload("Rangos", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("desde")
	})
}

// CrearHonorario inserta el honorario junto con sus rangos.
func (r *Repository) CrearHonorario(h *Honorario) error {
	return r.DB.Create(h).Error
}

func (r *Repository) ListarHonorarios() ([]Honorario, error) {
	var list []Honorario
	err := preloadRangos(r.DB).Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarHonorario(id uint) (*Honorario, error) {
	var h Honorario
	if err := preloadRangos(r.DB).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// ActualizarHonorario guarda nombre y nota y reemplaza el juego completo
// de rangos dentro de una transacción.
func (r *Repository) ActualizarHonorario(h *Honorario, rangos []Rango) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(h).Updates(map[string]interface{}{
			"nombre": h.Nombre,
			"nota":   h.Nota,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("honorario_id = ?", h.ID).Delete(&Rango{}).Error; err != nil {
			return err
		}
		for i := range rangos {
			rangos[i].ID = 0
			rangos[i].HonorarioID = h.ID
		}
		if len(rangos) > 0 {
			if err := tx.Create(&rangos).Error; err != nil {
				return err
			}
		}
		h.Rangos = rangos
		return nil
	})
}

func (r *Repository) EliminarHonorario(h *Honorario) error {
	return r.DB.Select("Rangos").Delete(h).Error
}

// --- Planes ---

func (r *Repository) CrearPlan(p *Plan) error {
	return r.DB.Create(p).Error
}

func (r *Repository) ListarPlanes() ([]Plan, error) {
	var list []Plan
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPlan(id uint) (*Plan, error) {
	var p Plan
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ActualizarPlan(p *Plan) error {
	return r.DB.Save(p).Error
}

func (r *Repository) EliminarPlan(p *Plan) error {
	return r.DB.Delete(p).Error
}
