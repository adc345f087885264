package cotizador

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cargadorFijo struct {
	snap *Snapshot
	err  error
}

func (c *cargadorFijo) Cargar() (*Snapshot, error) {
	return c.snap, c.err
}

func TestHandlerCalcularOK(t *testing.T) {
	h := NewHandler(&cargadorFijo{snap: snapshotDePrueba()})

	body := `{"servicioId":1,"entregableIds":[3],"area":100}`
	req := httptest.NewRequest(http.MethodPost, "/cotizaciones", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Calcular(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var cot Cotizacion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cot))
	assert.Equal(t, 1500.0, cot.Total)
	assert.Len(t, cot.Lineas, 1)
}

func TestHandlerCalcularErrores(t *testing.T) {
	tests := []struct {
		nombre string
		body   string
		status int
	}{
		{"JSON roto", `{"servicioId":`, http.StatusBadRequest},
		{"superficie negativa", `{"servicioId":1,"area":-5}`, http.StatusUnprocessableEntity},
		{"sin servicio", `{"area":100}`, http.StatusUnprocessableEntity},
		{"nodo inexistente", `{"servicioId":999,"area":100}`, http.StatusNotFound},
	}

	h := NewHandler(&cargadorFijo{snap: snapshotDePrueba()})
	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cotizaciones", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Calcular(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandlerCalcularFallaElCargador(t *testing.T) {
	h := NewHandler(&cargadorFijo{err: errors.New("base caída")})

	req := httptest.NewRequest(http.MethodPost, "/cotizaciones", strings.NewReader(`{"servicioId":1,"area":10}`))
	rec := httptest.NewRecorder()
	h.Calcular(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
