package mezclas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipacion(t *testing.T) {
	m := Mezcla{Participaciones: map[string]float64{"2": 0.6, "6": 0.4}}

	assert.Equal(t, 0.6, m.Participacion(2))
	assert.Equal(t, 0.4, m.Participacion(6))
	assert.Equal(t, 0.0, m.Participacion(99), "categoría no contemplada")
}

func TestValidar(t *testing.T) {
	tests := []struct {
		nombre string
		m      Mezcla
		valido bool
	}{
		{"vacía", Mezcla{}, true},
		{"suma exacta", Mezcla{Participaciones: map[string]float64{"1": 0.6, "2": 0.4}}, true},
		{"cobertura parcial", Mezcla{Participaciones: map[string]float64{"1": 0.3}}, true},
		{"fracción negativa", Mezcla{Participaciones: map[string]float64{"1": -0.1}}, false},
		{"fracción mayor a uno", Mezcla{Participaciones: map[string]float64{"1": 1.2}}, false},
		{"suma mayor a uno", Mezcla{Participaciones: map[string]float64{"1": 0.7, "2": 0.7}}, false},
		{"clave no numérica", Mezcla{Participaciones: map[string]float64{"vivienda": 0.5}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			err := tt.m.Validar()
			if tt.valido {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
