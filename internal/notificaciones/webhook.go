package notificaciones

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/VertiaArquitectura/api-cotizador/internal/leads"
)

// Webhook avisa por HTTP de eventos del sitio. Con URL vacía queda
// deshabilitado (entornos de desarrollo).
type Webhook struct {
	URL string
}

func NewWebhook(url string) *Webhook {
	return &Webhook{URL: url}
}

// NuevoLead envía el alerta de lead nuevo. Fire-and-forget: los fallos
// solo se loguean.
func (wh *Webhook) NuevoLead(l *leads.Lead) {
	if wh.URL == "" {
		return
	}

	payload := map[string]interface{}{
		"mensaje":  "Nuevo lead recibido desde el sitio",
		"folio":    l.Folio,
		"nombre":   l.Nombre,
		"email":    l.Email,
		"telefono": l.Telefono,
		"total":    l.Total,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(wh.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Error al enviar webhook de lead: %v", err)
		return
	}
	defer resp.Body.Close()
}
