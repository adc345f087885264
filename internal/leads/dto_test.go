package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarCrearLead(t *testing.T) {
	tests := []struct {
		nombre string
		dto    CrearLeadDTO
		valido bool
	}{
		{"contacto completo", CrearLeadDTO{Nombre: "Ana Pereyra", Email: "ana@ejemplo.com"}, true},
		{"solo teléfono", CrearLeadDTO{Nombre: "Ana", Telefono: "+54 11 5555-0000"}, true},
		{"sin nombre", CrearLeadDTO{Email: "ana@ejemplo.com"}, false},
		{"nombre en blanco", CrearLeadDTO{Nombre: "   ", Email: "ana@ejemplo.com"}, false},
		{"sin medio de contacto", CrearLeadDTO{Nombre: "Ana"}, false},
		{"email sin arroba", CrearLeadDTO{Nombre: "Ana", Email: "ana.ejemplo.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			msg := tt.dto.Validar()
			if tt.valido {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}
