package dto

import "disposal-locator-service/internal/domain"

func FromCoordinates(c domain.Coordinates) CoordinatesResponse {
	return CoordinatesResponse{Lat: c.Lat, Lng: c.Lng}
}

func FromLocation(l domain.Location) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		RoadAddress: l.RoadAddress,
		Lat:         l.Coordinates.Lat,
		Lng:         l.Coordinates.Lng,
		Phone:       l.Phone,
		MapsURL:     l.MapsURL(),
		TelURL:      l.DialURL(),
	}
}

func FromRanked(locs []domain.LocationWithDistance) []LocationResponse {
	out := make([]LocationResponse, 0, len(locs))
	for _, l := range locs {
		r := FromLocation(l.Location)
		d := l.Distance
		r.DistanceKm = &d
		r.DistanceLabel = l.DistanceLabel()
		out = append(out, r)
	}
	return out
}
