package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogCopiesInput(t *testing.T) {
	locs := []Location{
		{ID: 1, Name: "A", Coordinates: seoul},
		{ID: 2, Name: "B", Coordinates: busan},
	}

	c, err := NewCatalog(locs)
	require.NoError(t, err)

	locs[0].Name = "mutated"
	assert.Equal(t, "A", c.Locations()[0].Name)

	out := c.Locations()
	out[1].Name = "mutated"
	assert.Equal(t, "B", c.Locations()[1].Name)
	assert.Equal(t, 2, c.Len())
}

func TestNewCatalogRejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalog([]Location{{ID: 7}, {ID: 7}})
	assert.ErrorIs(t, err, ErrDuplicateLocationID)
}

func TestLocationDisplayHelpers(t *testing.T) {
	l := LocationWithDistance{
		Location: Location{ID: 1, Coordinates: seoul, Phone: " 02-120 "},
		Distance: 1.23456,
	}

	assert.Equal(t, "1.23 km away", l.DistanceLabel())
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=37.5665,126.978", l.MapsURL())
	assert.Equal(t, "tel:02-120", l.DialURL())

	l.Phone = ""
	assert.Empty(t, l.DialURL())
}

func TestGeolocationErrorMessages(t *testing.T) {
	assert.Equal(t, "Please allow location access to find nearby places.", NewGeolocationError(GeoPermissionDenied).Error())
	assert.Equal(t, "The request to get user location timed out.", NewGeolocationError(GeoTimeout).Error())

	unknown := NewGeolocationError("bogus")
	assert.Equal(t, GeoUnknown, unknown.Reason)
	assert.Equal(t, "An unknown error occurred.", unknown.Error())
}
