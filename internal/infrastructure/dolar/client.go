package dolar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Quote payload de la cotización del dólar blue (dolarapi.com).
type Quote struct {
	Compra             float64 `json:"compra"`
	Venta              float64 `json:"venta"`
	Casa               string  `json:"casa"`
	Nombre             string  `json:"nombre"`
	Moneda             string  `json:"moneda"`
	FechaActualizacion string  `json:"fechaActualizacion"`
}

// Client consulta la cotización de referencia. El timeout es corto porque
// el cambio de estado del proyecto queda bloqueado esperando esta llamada.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient construye el cliente con la URL de la API (https://dolarapi.com/v1/dolares/blue).
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// GetBlue obtiene la cotización actual y devuelve el payload completo,
// tal cual se recibió, para snapshotearlo en el proyecto.
func (c *Client) GetBlue(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar cotización: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cotización: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}

	// Validar que sea el payload esperado antes de persistirlo.
	var q Quote
	if err := json.Unmarshal(body, &q); err != nil {
		return nil, fmt.Errorf("payload inesperado: %w", err)
	}
	if q.Venta == 0 && q.Compra == 0 {
		return nil, fmt.Errorf("cotización vacía")
	}
	return json.RawMessage(body), nil
}
