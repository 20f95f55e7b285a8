package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// InRange reports whether the pair lies within [-90, 90] x [-180, 180].
// The distance core never calls this; it exists for input boundaries.
func (c Coordinates) InRange() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lng)
}
