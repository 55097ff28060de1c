package geo

import (
	"math"
	"testing"
)

func TestDistanceKmSamePoint(t *testing.T) {
	p := Coordinate{Lat: -32.9468, Lng: -60.6393}
	if got := DistanceKm(p, p); got != 0 {
		t.Fatalf("expected 0 km for same point, got %v", got)
	}
}

func TestDistanceKmKnownPairs(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Coordinate
		expected float64
		delta    float64
	}{
		{
			name:     "rosario_to_buenos_aires",
			a:        Coordinate{Lat: -32.9468, Lng: -60.6393},
			b:        Coordinate{Lat: -34.6037, Lng: -58.3816},
			expected: 280,
			delta:    5,
		},
		{
			name:     "one_degree_latitude",
			a:        Coordinate{Lat: 0, Lng: 0},
			b:        Coordinate{Lat: 1, Lng: 0},
			expected: 111.19,
			delta:    0.2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DistanceKm(tc.a, tc.b)
			if math.Abs(got-tc.expected) > tc.delta {
				t.Fatalf("unexpected distance: got=%v expected=%v (±%v)", got, tc.expected, tc.delta)
			}
		})
	}
}

func TestDistanceKmRoundsToTwoDecimals(t *testing.T) {
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 0.013, Lng: 0.007}
	got := DistanceKm(a, b)
	if got != math.Round(got*100)/100 {
		t.Fatalf("expected distance rounded to 2 decimals, got %v", got)
	}
}
