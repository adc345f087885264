package tarifario

// RangoDTO es un tramo tal como llega del panel de administración.
type RangoDTO struct {
	Desde  float64  `json:"desde"`
	Hasta  *float64 `json:"hasta"`
	Precio float64  `json:"precio"`
}

// HonorarioDTO es el payload de alta/edición de un honorario.
type HonorarioDTO struct {
	Nombre string     `json:"nombre"`
	Nota   string     `json:"nota"`
	Rangos []RangoDTO `json:"rangos"`
}

func (d HonorarioDTO) rangos() []Rango {
	out := make([]Rango, 0, len(d.Rangos))
	for _, r := range d.Rangos {
		out = append(out, Rango{Desde: r.Desde, Hasta: r.Hasta, Precio: r.Precio})
	}
	return out
}
