package services

import (
	"disposal-locator-service/internal/domain"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	seoul = domain.Coordinates{Lat: 37.5665, Lng: 126.9780}
	busan = domain.Coordinates{Lat: 35.1796, Lng: 129.0756}
)

func newLocator(t *testing.T, locs ...domain.Location) *Locator {
	t.Helper()
	c, err := domain.NewCatalog(locs)
	require.NoError(t, err)
	return NewLocator(c)
}

func seoulBusanLocator(t *testing.T) *Locator {
	return newLocator(t,
		domain.Location{ID: 1, Name: "Seoul", Coordinates: seoul},
		domain.Location{ID: 2, Name: "Busan", Coordinates: busan},
	)
}

func ids(locs []domain.LocationWithDistance) []int {
	out := make([]int, 0, len(locs))
	for _, l := range locs {
		out = append(out, l.ID)
	}
	return out
}

func TestFindNearbyLocationsScenario(t *testing.T) {
	l := seoulBusanLocator(t)

	got := l.FindNearbyLocations(seoul, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
	assert.InDelta(t, 0, got[0].Distance, 1e-9)
}

func TestFindNearbyLocationsInclusiveBoundary(t *testing.T) {
	l := seoulBusanLocator(t)
	radius := domain.Distance(seoul, busan)

	got := l.FindNearbyLocations(seoul, radius)
	assert.Equal(t, []int{1, 2}, ids(got))
}

func TestFindNearbyLocationsEmpty(t *testing.T) {
	empty := newLocator(t)
	got := empty.FindNearbyLocations(seoul, 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	far := seoulBusanLocator(t)
	assert.Empty(t, far.FindNearbyLocations(domain.Coordinates{Lat: 0, Lng: 0}, 10))
}

func TestFindTopNLocationsScenario(t *testing.T) {
	l := seoulBusanLocator(t)

	top1 := l.FindTopNLocations(seoul, 1)
	assert.Equal(t, []int{1}, ids(top1))
	assert.InDelta(t, 0, top1[0].Distance, 1e-9)

	assert.Equal(t, []int{1, 2}, ids(l.FindTopNLocations(seoul, 2)))
	assert.Equal(t, []int{2, 1}, ids(l.FindTopNLocations(busan, 2)))
}

func TestFindTopNLocationsShortCatalog(t *testing.T) {
	l := seoulBusanLocator(t)
	assert.Len(t, l.FindTopNLocations(seoul, 3), 2)
	assert.Empty(t, l.FindTopNLocations(seoul, 0))
	assert.Empty(t, l.FindTopNLocations(seoul, -1))
}

func TestFindTopNLocationsTiesKeepCatalogOrder(t *testing.T) {
	l := newLocator(t,
		domain.Location{ID: 10, Coordinates: busan},
		domain.Location{ID: 11, Coordinates: busan},
		domain.Location{ID: 12, Coordinates: seoul},
	)

	assert.Equal(t, []int{12, 10, 11}, ids(l.FindTopNLocations(seoul, 3)))
}

func TestRankingDoesNotMutateCatalog(t *testing.T) {
	l := seoulBusanLocator(t)
	before := l.Catalog().Locations()

	_ = l.FindTopNLocations(busan, 2)
	_ = l.FindNearbyLocations(busan, 1000)

	assert.Equal(t, before, l.Catalog().Locations())
}

func TestRankingProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	locs := make([]domain.Location, 0, 200)
	for i := 1; i <= 200; i++ {
		locs = append(locs, domain.Location{
			ID: i,
			Coordinates: domain.Coordinates{
				Lat: 37.4 + rng.Float64()*0.3,
				Lng: 126.8 + rng.Float64()*0.4,
			},
		})
	}
	l := newLocator(t, locs...)

	for trial := 0; trial < 20; trial++ {
		origin := domain.Coordinates{Lat: 37.4 + rng.Float64()*0.3, Lng: 126.8 + rng.Float64()*0.4}
		radius := 1 + rng.Float64()*9
		n := rng.Intn(20)

		nearby := l.FindNearbyLocations(origin, radius)
		for i, loc := range nearby {
			assert.LessOrEqual(t, loc.Distance, radius)
			if i > 0 {
				assert.LessOrEqual(t, nearby[i-1].Distance, loc.Distance)
			}
		}

		inRadius := 0
		for _, loc := range locs {
			if domain.Distance(origin, loc.Coordinates) <= radius {
				inRadius++
			}
		}
		assert.Len(t, nearby, inRadius)

		top := l.FindTopNLocations(origin, n)
		require.Len(t, top, min(n, len(locs)))

		returned := make(map[int]struct{}, len(top))
		worst := 0.0
		for i, loc := range top {
			returned[loc.ID] = struct{}{}
			worst = max(worst, loc.Distance)
			if i > 0 {
				assert.LessOrEqual(t, top[i-1].Distance, loc.Distance)
			}
		}
		if len(top) == 0 {
			continue
		}
		for _, loc := range locs {
			if _, ok := returned[loc.ID]; ok {
				continue
			}
			assert.GreaterOrEqual(t, domain.Distance(origin, loc.Coordinates), worst)
		}
	}
}
