package domain

import (
	"fmt"
	"strings"
)

// Represents a single medication-disposal site.
// A Location is static catalog data and is never modified after load.
type Location struct {
	ID          int
	Name        string
	RoadAddress string
	Coordinates Coordinates
	Phone       string
}

// MapsURL links to a map search centered on the location.
func (l Location) MapsURL() string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%g,%g", l.Coordinates.Lat, l.Coordinates.Lng)
}

// DialURL returns a tel: link, or "" when the location has no phone.
func (l Location) DialURL() string {
	phone := strings.TrimSpace(l.Phone)
	if phone == "" {
		return ""
	}
	return "tel:" + phone
}

// A Location annotated with its distance (km) from a reference point.
// Values are created per query and not persisted.
type LocationWithDistance struct {
	Location
	Distance float64
}

func (l LocationWithDistance) DistanceLabel() string {
	return fmt.Sprintf("%.2f km away", l.Distance)
}
