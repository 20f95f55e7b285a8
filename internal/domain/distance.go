package domain

import "math"

// EarthRadiusKm is the spherical Earth radius used by Distance.
const EarthRadiusKm = 6371.0

const degreesToRadians = math.Pi / 180

// Distance returns the great-circle distance in kilometers between p1 and p2
// using the haversine formula.
//
// Inputs are not range checked: out-of-range degrees yield a number, not an error.
func Distance(p1, p2 Coordinates) float64 {
	dLat := (p2.Lat - p1.Lat) * degreesToRadians
	dLng := (p2.Lng - p1.Lng) * degreesToRadians

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p1.Lat*degreesToRadians)*math.Cos(p2.Lat*degreesToRadians)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
