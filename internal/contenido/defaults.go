package contenido

// Claves de sección conocidas por el sitio.
const (
	ClaveHero      = "hero"
	ClaveNosotros  = "nosotros"
	ClaveServicios = "servicios"
	ClaveParallax  = "parallax"
	ClaveProceso   = "proceso"
)

// defaults es el contenido de fábrica de cada sección: lo que el sitio
// muestra mientras nadie editó nada desde el panel.
var defaults = map[string]map[string]interface{}{
	ClaveHero: {
		"titulo":    "Diseñamos y construimos tu próximo proyecto",
		"subtitulo": "Arquitectura, dirección de obra y construcción llave en mano",
		"cta":       "Cotizá tu proyecto",
	},
	ClaveNosotros: {
		"titulo": "Quiénes somos",
		"texto":  "Estudio de arquitectura y construcción con más de 15 años de trayectoria.",
	},
	ClaveServicios: {
		"titulo": "Servicios",
		"items": []interface{}{
			map[string]interface{}{"nombre": "Diseño", "descripcion": "Anteproyecto y proyecto ejecutivo"},
			map[string]interface{}{"nombre": "Construcción", "descripcion": "Obra nueva y ampliaciones"},
			map[string]interface{}{"nombre": "Dirección de obra", "descripcion": "Supervisión técnica integral"},
		},
	},
	ClaveParallax: {
		"titulo": "Obras que hablan por nosotros",
		"texto":  "Cada proyecto, una historia construida.",
	},
	ClaveProceso: {
		"titulo": "Nuestro proceso",
		"pasos": []interface{}{
			map[string]interface{}{"orden": 1, "nombre": "Entrevista", "descripcion": "Relevamos necesidades y terreno"},
			map[string]interface{}{"orden": 2, "nombre": "Anteproyecto", "descripcion": "Propuesta y cotización"},
			map[string]interface{}{"orden": 3, "nombre": "Proyecto", "descripcion": "Documentación ejecutiva"},
			map[string]interface{}{"orden": 4, "nombre": "Obra", "descripcion": "Construcción y entrega"},
		},
	},
}

// ClaveConocida indica si la clave corresponde a una sección del sitio.
func ClaveConocida(clave string) bool {
	_, ok := defaults[clave]
	return ok
}

// DatosPorDefecto devuelve el contenido de fábrica de la clave.
func DatosPorDefecto(clave string) (map[string]interface{}, bool) {
	d, ok := defaults[clave]
	return d, ok
}
