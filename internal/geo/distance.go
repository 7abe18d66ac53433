package geo

import (
	"math"
	"math/rand"
)

// earthRadiusKm is the mean radius of the Earth used by the haversine formula.
const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance between two coordinates in
// kilometres, rounded to one decimal place. It is a pure function: no
// validation is performed, and out-of-range inputs produce meaningless output.
func DistanceKm(a, b Coordinate) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*10) / 10
}

// EstimateDistance returns the distance between two endpoints for display.
// When both endpoints are resolved it returns the real haversine distance
// with estimated=false. When either endpoint is the unresolved sentinel it
// returns a random plausible placeholder in [500, 5500) km with
// estimated=true; the placeholder is a display fallback, never a computed
// value, and callers must present it as such.
func EstimateDistance(a, b Coordinate) (km float64, estimated bool) {
	if a.Unresolved() || b.Unresolved() {
		return float64(rand.Intn(5000) + 500), true
	}
	return DistanceKm(a, b), false
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
