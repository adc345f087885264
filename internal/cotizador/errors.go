package cotizador

import "errors"

// Taxonomía de errores del cotizador. Siempre se devuelven como valores;
// el handler los traduce a códigos HTTP. Un tramo sin precio NO es un
// error: se informa como línea con SinPrecio en el resultado.
var (
	// ErrEntradaInvalida marca una selección mal formada o una
	// superficie negativa o no finita.
	ErrEntradaInvalida = errors.New("entrada inválida")

	// ErrNoEncontrado marca una referencia colgante a un nodo,
	// honorario o mezcla que ya no existe. Aborta el cálculo completo.
	ErrNoEncontrado = errors.New("no encontrado")
)
