package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/cache"
	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/geo"
	"github.com/mercadito-app/mercadito-api/internal/logger"
	"github.com/mercadito-app/mercadito-api/internal/models"

	"github.com/shopspring/decimal"
)

// Direcciones más cortas se ignoran en vez de rechazarse: el front manda
// borradores mientras el cliente tipea.
const minAddressLength = 5

// Las coordenadas de una dirección no cambian; el TTL existe solo para
// que el caché no crezca sin límite.
const geocodeCacheTTL = 24 * time.Hour

// ShippingOptions parámetros de entrega a domicilio
type ShippingOptions struct {
	StoreAddress  string
	PickupKeyword string
	BaseFee       float64
	PerKmRate     float64
	MaxDistanceKm float64
}

// ShippingService calcula el costo de envío por distancia
type ShippingService struct {
	geocoder geo.Geocoder
	opts     ShippingOptions

	mu         sync.Mutex
	storeCoord *geo.Coordinate
}

// NewShippingService crea el servicio de envíos
func NewShippingService(geocoder geo.Geocoder, opts ShippingOptions) *ShippingService {
	return &ShippingService{
		geocoder: geocoder,
		opts:     opts,
	}
}

// CalculateCost resuelve el costo de envío para una forma de entrega y
// dirección. Retiro en el local, dirección en blanco o con la palabra
// clave de retiro cuestan cero y no consultan al geocodificador.
func (s *ShippingService) CalculateCost(ctx context.Context, deliveryOption, address string) (models.Money, error) {
	if strings.EqualFold(strings.TrimSpace(deliveryOption), constants.DeliveryOptionPickup) {
		return models.Money{}, nil
	}

	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return models.Money{}, nil
	}
	keyword := strings.TrimSpace(s.opts.PickupKeyword)
	if keyword != "" && strings.Contains(strings.ToLower(trimmed), strings.ToLower(keyword)) {
		return models.Money{}, nil
	}
	if len([]rune(trimmed)) < minAddressLength {
		return models.Money{}, nil
	}

	store, err := s.storeCoordinate(ctx)
	if err != nil {
		return models.Money{}, err
	}
	destination, err := s.geocodeDestination(ctx, trimmed)
	if err != nil {
		if errors.Is(err, geo.ErrNoResults) {
			return models.Money{}, ErrGeocodingFailed
		}
		return models.Money{}, fmt.Errorf("%w: %v", ErrGeocodingFailed, err)
	}

	distance := geo.DistanceKm(store, destination)
	if s.opts.MaxDistanceKm > 0 && distance > s.opts.MaxDistanceKm {
		return models.Money{}, ErrOutOfServiceArea
	}

	base := decimal.NewFromFloat(s.opts.BaseFee).Round(2)
	cost := decimal.NewFromFloat(s.opts.BaseFee).
		Add(decimal.NewFromFloat(distance).Mul(decimal.NewFromFloat(s.opts.PerKmRate))).
		Round(2)
	if cost.LessThan(base) {
		cost = base
	}
	return models.NewMoneyFromDecimal(cost), nil
}

// geocodeDestination resuelve la coordenada del destino pasando por el
// caché: las direcciones no cambian de lugar y el proveedor cobra por
// consulta. Con el caché deshabilitado consulta directo.
func (s *ShippingService) geocodeDestination(ctx context.Context, address string) (geo.Coordinate, error) {
	cacheKey := "geo:addr:" + strings.ToLower(address)

	var cached geo.Coordinate
	if found, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	coord, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return geo.Coordinate{}, err
	}
	if err := cache.SetJSON(ctx, cacheKey, coord, geocodeCacheTTL); err != nil {
		logger.Warnw("shipping_geocode_cache_write_failed", "error", err)
	}
	return coord, nil
}

// storeCoordinate geocodifica la dirección del local una sola vez por
// proceso. El mutex cubre la llamada completa para que pedidos
// concurrentes no dupliquen la consulta; los fallos no se cachean.
func (s *ShippingService) storeCoordinate(ctx context.Context) (geo.Coordinate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storeCoord != nil {
		return *s.storeCoord, nil
	}

	storeAddress := strings.TrimSpace(s.opts.StoreAddress)
	if storeAddress == "" {
		return geo.Coordinate{}, fmt.Errorf("%w: dirección del local sin configurar", ErrGeocodingFailed)
	}

	coord, err := s.geocoder.Geocode(ctx, storeAddress)
	if err != nil {
		if errors.Is(err, geo.ErrNoResults) {
			return geo.Coordinate{}, ErrGeocodingFailed
		}
		return geo.Coordinate{}, fmt.Errorf("%w: %v", ErrGeocodingFailed, err)
	}
	s.storeCoord = &coord
	return coord, nil
}
