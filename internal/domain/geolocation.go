package domain

// Reason a device position could not be determined.
type GeolocationReason string

const (
	GeoUnsupported         GeolocationReason = "unsupported"
	GeoPermissionDenied    GeolocationReason = "permission_denied"
	GeoPositionUnavailable GeolocationReason = "position_unavailable"
	GeoTimeout             GeolocationReason = "timeout"
	GeoUnknown             GeolocationReason = "unknown"
)

var geolocationMessages = map[GeolocationReason]string{
	GeoUnsupported:         "Geolocation is not supported by your browser.",
	GeoPermissionDenied:    "Please allow location access to find nearby places.",
	GeoPositionUnavailable: "Location information is unavailable.",
	GeoTimeout:             "The request to get user location timed out.",
	GeoUnknown:             "An unknown error occurred.",
}

// GeolocationError is returned by position resolvers. Its message is meant
// to be shown to the user as is.
type GeolocationError struct {
	Reason GeolocationReason
}

func NewGeolocationError(reason GeolocationReason) *GeolocationError {
	if _, ok := geolocationMessages[reason]; !ok {
		reason = GeoUnknown
	}
	return &GeolocationError{Reason: reason}
}

func (e *GeolocationError) Error() string {
	if msg, ok := geolocationMessages[e.Reason]; ok {
		return msg
	}
	return geolocationMessages[GeoUnknown]
}
