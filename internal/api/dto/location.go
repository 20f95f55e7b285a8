package dto

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocationResponse struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	RoadAddress   string   `json:"road_address"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Phone         string   `json:"phone,omitempty"`
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	DistanceLabel string   `json:"distance_label,omitempty"`
	MapsURL       string   `json:"maps_url"`
	TelURL        string   `json:"tel_url,omitempty"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

type NearbyResponse struct {
	Origin    CoordinatesResponse `json:"origin"`
	RadiusKm  float64             `json:"radius_km"`
	Locations []LocationResponse  `json:"locations"`
}

type SearchResponse struct {
	Address   string              `json:"address"`
	Searched  CoordinatesResponse `json:"searched"`
	Locations []LocationResponse  `json:"locations"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type GeolocationErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}
