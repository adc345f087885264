package tarifario

import "fmt"

// ResolverRango devuelve el primer rango, en el orden almacenado, cuyo
// tramo contiene la cantidad: Desde <= q y (Hasta == nil o q < *Hasta).
// El límite inferior es inclusivo y el superior exclusivo: q = 100 sobre
// [0,100) y [100,∞) cae en el segundo tramo. Devuelve nil cuando ningún
// tramo contiene la cantidad.
//
// Los rangos se asumen ordenados por Desde y sin solaparse; si por un
// error de carga se solapan, gana el primero en el orden almacenado.
func ResolverRango(rangos []Rango, cantidad float64) *Rango {
	for i := range rangos {
		r := &rangos[i]
		if cantidad < r.Desde {
			continue
		}
		if r.Hasta == nil || cantidad < *r.Hasta {
			return r
		}
	}
	return nil
}

// ValidarRangos verifica el invariante de escritura: tramos ordenados por
// Desde, sin solaparse, con límites no negativos y a lo sumo un tramo
// abierto al final.
func ValidarRangos(rangos []Rango) error {
	for i := range rangos {
		r := rangos[i]
		if r.Desde < 0 {
			return fmt.Errorf("rango %d: desde negativo", i)
		}
		if r.Hasta != nil && *r.Hasta <= r.Desde {
			return fmt.Errorf("rango %d: hasta debe ser mayor que desde", i)
		}
		if r.Hasta == nil && i != len(rangos)-1 {
			return fmt.Errorf("rango %d: solo el último tramo puede ser abierto", i)
		}
		if i > 0 {
			prev := rangos[i-1]
			if prev.Hasta == nil || r.Desde < *prev.Hasta {
				return fmt.Errorf("rango %d: se solapa con el anterior", i)
			}
		}
	}
	return nil
}
