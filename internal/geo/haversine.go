package geo

import "math"

// earthRadiusKm radio terrestre medio en kilómetros
const earthRadiusKm = 6371.0

// DistanceKm distancia ortodrómica (haversine) entre dos coordenadas,
// en kilómetros redondeados a 2 decimales.
func DistanceKm(a, b Coordinate) float64 {
	latA := toRadians(a.Lat)
	latB := toRadians(b.Lat)
	deltaLat := toRadians(b.Lat - a.Lat)
	deltaLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(deltaLat / 2)
	sinLng := math.Sin(deltaLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return round2(earthRadiusKm * c)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
