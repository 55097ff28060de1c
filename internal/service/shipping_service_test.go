package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/geo"
)

type fakeGeocoder struct {
	coords map[string]geo.Coordinate
	calls  []string
	failed map[string]int
}

func newFakeGeocoder() *fakeGeocoder {
	return &fakeGeocoder{
		coords: make(map[string]geo.Coordinate),
		failed: make(map[string]int),
	}
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (geo.Coordinate, error) {
	f.calls = append(f.calls, address)
	if remaining, ok := f.failed[address]; ok && remaining > 0 {
		f.failed[address] = remaining - 1
		return geo.Coordinate{}, geo.ErrNoResults
	}
	coord, ok := f.coords[address]
	if !ok {
		return geo.Coordinate{}, geo.ErrNoResults
	}
	return coord, nil
}

func (f *fakeGeocoder) callCount(address string) int {
	count := 0
	for _, call := range f.calls {
		if call == address {
			count++
		}
	}
	return count
}

const testStoreAddress = "San Martín 1500, Rosario"

func setupShippingServiceTest(t *testing.T, opts ShippingOptions) (*ShippingService, *fakeGeocoder) {
	t.Helper()
	geocoder := newFakeGeocoder()
	geocoder.coords[testStoreAddress] = geo.Coordinate{Lat: -32.9442, Lng: -60.6505}
	if opts.StoreAddress == "" {
		opts.StoreAddress = testStoreAddress
	}
	if opts.PickupKeyword == "" {
		opts.PickupKeyword = "retiro"
	}
	return NewShippingService(geocoder, opts), geocoder
}

func TestCalculateCostPickupPathsSkipGeocoding(t *testing.T) {
	tests := []struct {
		name           string
		deliveryOption string
		address        string
	}{
		{"pickup option", constants.DeliveryOptionPickup, "Córdoba 900, Rosario"},
		{"blank address", constants.DeliveryOptionShipping, "   "},
		{"pickup keyword in address", constants.DeliveryOptionShipping, "Retiro en local"},
		{"address too short", constants.DeliveryOptionShipping, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, geocoder := setupShippingServiceTest(t, ShippingOptions{BaseFee: 500, PerKmRate: 10})

			cost, err := svc.CalculateCost(context.Background(), tt.deliveryOption, tt.address)
			if err != nil {
				t.Fatalf("calculate cost failed: %v", err)
			}
			if got := cost.String(); got != "0.00" {
				t.Fatalf("cost want 0.00 got %s", got)
			}
			if len(geocoder.calls) != 0 {
				t.Fatalf("geocoder calls want 0 got %d (%v)", len(geocoder.calls), geocoder.calls)
			}
		})
	}
}

func TestCalculateCostDistancePricing(t *testing.T) {
	svc, geocoder := setupShippingServiceTest(t, ShippingOptions{BaseFee: 500, PerKmRate: 10})
	// un grado de latitud son 111.19 km redondeados
	geocoder.coords["Belgrano 200, San Nicolás"] = geo.Coordinate{Lat: -31.9442, Lng: -60.6505}

	cost, err := svc.CalculateCost(context.Background(), constants.DeliveryOptionShipping, "Belgrano 200, San Nicolás")
	if err != nil {
		t.Fatalf("calculate cost failed: %v", err)
	}
	if got := cost.String(); got != "1611.90" {
		t.Fatalf("cost want 1611.90 got %s", got)
	}
}

func TestCalculateCostNeverBelowBaseFee(t *testing.T) {
	svc, geocoder := setupShippingServiceTest(t, ShippingOptions{BaseFee: 500, PerKmRate: 10})
	geocoder.coords["Same Spot 123"] = geo.Coordinate{Lat: -32.9442, Lng: -60.6505}

	cost, err := svc.CalculateCost(context.Background(), constants.DeliveryOptionShipping, "Same Spot 123")
	if err != nil {
		t.Fatalf("calculate cost failed: %v", err)
	}
	if got := cost.String(); got != "500.00" {
		t.Fatalf("cost want 500.00 got %s", got)
	}
}

func TestCalculateCostOutOfServiceArea(t *testing.T) {
	svc, geocoder := setupShippingServiceTest(t, ShippingOptions{BaseFee: 500, PerKmRate: 10, MaxDistanceKm: 50})
	geocoder.coords["Muy Lejos 1"] = geo.Coordinate{Lat: -31.9442, Lng: -60.6505}

	_, err := svc.CalculateCost(context.Background(), constants.DeliveryOptionShipping, "Muy Lejos 1")
	if !errors.Is(err, ErrOutOfServiceArea) {
		t.Fatalf("want ErrOutOfServiceArea got %v", err)
	}
}

func TestCalculateCostGeocodingFailure(t *testing.T) {
	svc, _ := setupShippingServiceTest(t, ShippingOptions{BaseFee: 500, PerKmRate: 10})

	_, err := svc.CalculateCost(context.Background(), constants.DeliveryOptionShipping, "Dirección Desconocida 42")
	if !errors.Is(err, ErrGeocodingFailed) {
		t.Fatalf("want ErrGeocodingFailed got %v", err)
	}
}

func TestCalculateCostCachesStoreCoordinate(t *testing.T) {
	svc, geocoder := setupShippingServiceTest(t, ShippingOptions{BaseFee: 500, PerKmRate: 10})
	geocoder.coords["Belgrano 200, San Nicolás"] = geo.Coordinate{Lat: -31.9442, Lng: -60.6505}

	for i := 0; i < 3; i++ {
		if _, err := svc.CalculateCost(context.Background(), constants.DeliveryOptionShipping, "Belgrano 200, San Nicolás"); err != nil {
			t.Fatalf("calculate cost %d failed: %v", i, err)
		}
	}
	if got := geocoder.callCount(testStoreAddress); got != 1 {
		t.Fatalf("store geocode calls want 1 got %d", got)
	}
	if got := geocoder.callCount("Belgrano 200, San Nicolás"); got != 3 {
		t.Fatalf("destination geocode calls want 3 got %d", got)
	}
}

func TestCalculateCostDoesNotCacheStoreFailure(t *testing.T) {
	svc, geocoder := setupShippingServiceTest(t, ShippingOptions{BaseFee: 500, PerKmRate: 10})
	geocoder.coords["Belgrano 200, San Nicolás"] = geo.Coordinate{Lat: -31.9442, Lng: -60.6505}
	geocoder.failed[testStoreAddress] = 1

	_, err := svc.CalculateCost(context.Background(), constants.DeliveryOptionShipping, "Belgrano 200, San Nicolás")
	if !errors.Is(err, ErrGeocodingFailed) {
		t.Fatalf("first call want ErrGeocodingFailed got %v", err)
	}

	if _, err := svc.CalculateCost(context.Background(), constants.DeliveryOptionShipping, "Belgrano 200, San Nicolás"); err != nil {
		t.Fatalf("second call should recover: %v", err)
	}
	if got := geocoder.callCount(testStoreAddress); got != 2 {
		t.Fatalf("store geocode calls want 2 got %d", got)
	}
}
