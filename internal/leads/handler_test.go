package leads

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repoEnMemoria struct {
	mu    sync.Mutex
	leads []Lead
}

func (r *repoEnMemoria) Guardar(_ *gorm.DB, l *Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = uint(len(r.leads) + 1)
	r.leads = append(r.leads, *l)
	return nil
}

func (r *repoEnMemoria) ListarTodos(_ *gorm.DB) ([]Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Lead(nil), r.leads...), nil
}

func (r *repoEnMemoria) ListarPorEstado(_ *gorm.DB, estado string) ([]Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Lead
	for _, l := range r.leads {
		if l.Estado == estado {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *repoEnMemoria) BuscarPorID(_ *gorm.DB, id uint) (*Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.leads {
		if r.leads[i].ID == id {
			l := r.leads[i]
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *repoEnMemoria) Actualizar(_ *gorm.DB, l *Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.leads {
		if r.leads[i].ID == l.ID {
			r.leads[i] = *l
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *repoEnMemoria) Eliminar(_ *gorm.DB, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.leads {
		if r.leads[i].ID == id {
			r.leads = append(r.leads[:i], r.leads[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type notificadorDePrueba struct {
	avisos chan *Lead
}

func (n *notificadorDePrueba) NuevoLead(l *Lead) {
	n.avisos <- l
}

func TestCrearLead(t *testing.T) {
	repo := &repoEnMemoria{}
	notif := &notificadorDePrueba{avisos: make(chan *Lead, 1)}
	h := &Handler{Repository: repo, Notificador: notif}

	body := `{"nombre":"Ana Pereyra","email":"ana@ejemplo.com","servicioId":1,"area":120,"total":9000,
		"detalle":[{"etiqueta":"Vivienda unifamiliar","precioUnitario":45,"cantidad":200,"subtotal":9000}]}`
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Crear(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var l Lead
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&l))
	assert.NotEmpty(t, l.Folio)
	assert.Equal(t, EstadoNuevo, l.Estado)
	assert.Equal(t, 9000.0, l.Total)
	require.Len(t, l.Detalle, 1)

	// el alta dispara el aviso en segundo plano
	select {
	case avisado := <-notif.avisos:
		assert.Equal(t, l.Folio, avisado.Folio)
	case <-time.After(time.Second):
		t.Fatal("no llegó el aviso de lead nuevo")
	}
}

func TestCrearLeadInvalido(t *testing.T) {
	h := &Handler{Repository: &repoEnMemoria{}}

	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(`{"nombre":"Ana"}`))
	rec := httptest.NewRecorder()
	h.Crear(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListarLeadsPorEstado(t *testing.T) {
	repo := &repoEnMemoria{leads: []Lead{
		{ID: 1, Nombre: "Ana", Estado: EstadoNuevo},
		{ID: 2, Nombre: "Bruno", Estado: EstadoContactado},
	}}
	h := &Handler{Repository: repo}

	req := httptest.NewRequest(http.MethodGet, "/admin/leads?estado=Contactado", nil)
	rec := httptest.NewRecorder()
	h.Listar(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var list []Lead
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Bruno", list[0].Nombre)
}
