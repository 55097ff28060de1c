package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// ErrNoResults el proveedor no devolvió resultados para la dirección
var ErrNoResults = errors.New("geocoding: sin resultados para la dirección")

// Coordinate coordenada geográfica
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocoder resuelve una dirección de texto libre a una coordenada
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinate, error)
}

// HTTPGeocoder cliente HTTP del proveedor de geocodificación
type HTTPGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPGeocoder crea el cliente de geocodificación
func NewHTTPGeocoder(baseURL, apiKey string, timeout time.Duration) *HTTPGeocoder {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPGeocoder{
		baseURL: strings.TrimSpace(baseURL),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type geocodeResponse struct {
	Results []struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"results"`
}

// Geocode consulta el proveedor y devuelve la coordenada del primer resultado
func (g *HTTPGeocoder) Geocode(ctx context.Context, address string) (Coordinate, error) {
	if g == nil || g.baseURL == "" {
		return Coordinate{}, errors.New("geocoding: proveedor no configurado")
	}

	params := url.Values{}
	params.Set("q", strings.TrimSpace(address))
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Coordinate{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Coordinate{}, fmt.Errorf("geocoding: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinate{}, fmt.Errorf("geocoding: respuesta inesperada del proveedor (%d)", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Coordinate{}, err
	}

	var parsed geocodeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Coordinate{}, fmt.Errorf("geocoding: respuesta inválida: %w", err)
	}
	if len(parsed.Results) == 0 {
		return Coordinate{}, ErrNoResults
	}
	return Coordinate{Lat: parsed.Results[0].Lat, Lng: parsed.Results[0].Lng}, nil
}
