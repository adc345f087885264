package cotizador

import (
	"gorm.io/gorm"

	"github.com/VertiaArquitectura/api-cotizador/internal/catalogo"
	"github.com/VertiaArquitectura/api-cotizador/internal/mezclas"
	"github.com/VertiaArquitectura/api-cotizador/internal/tarifario"
)

// Snapshot es la foto inmutable de catálogo, tarifario y mezclas sobre
// la que corre un cálculo. El cálculo nunca la muta; una edición
// concurrente del catálogo produce a lo sumo una cotización con datos
// viejos, lo cual es aceptable porque la cotización es orientativa.
type Snapshot struct {
	Nodos      map[uint]catalogo.Nodo
	Honorarios map[uint]tarifario.Honorario
	Mezclas    map[uint]mezclas.Mezcla
}

// CargadorSnapshot entrega la foto de datos para un cálculo.
type CargadorSnapshot interface {
	Cargar() (*Snapshot, error)
}

type cargadorGorm struct {
	db *gorm.DB
}

// NewCargador crea el cargador respaldado por la base.
func NewCargador(db *gorm.DB) CargadorSnapshot {
	return &cargadorGorm{db: db}
}

func (c *cargadorGorm) Cargar() (*Snapshot, error) {
	var nodos []catalogo.Nodo
	if err := c.db.Find(&nodos).Error; err != nil {
		return nil, err
	}

	var honorarios []tarifario.Honorario
	err := c.db.Preload("Rangos", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("desde")
	}).Find(&honorarios).Error
	if err != nil {
		return nil, err
	}

	var mzs []mezclas.Mezcla
	if err := c.db.Find(&mzs).Error; err != nil {
		return nil, err
	}

	s := &Snapshot{
		Nodos:      make(map[uint]catalogo.Nodo, len(nodos)),
		Honorarios: make(map[uint]tarifario.Honorario, len(honorarios)),
		Mezclas:    make(map[uint]mezclas.Mezcla, len(mzs)),
	}
	for _, n := range nodos {
		s.Nodos[n.ID] = n
	}
	for _, h := range honorarios {
		s.Honorarios[h.ID] = h
	}
	for _, m := range mzs {
		s.Mezclas[m.ID] = m
	}
	return s, nil
}
