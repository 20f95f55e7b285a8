package services

import (
	"cmp"
	"disposal-locator-service/internal/domain"
	"slices"
)

// Locator ranks catalog entries by great-circle distance from a point.
//
// It holds an immutable catalog and no other state, so a single Locator is
// safe to share between goroutines.
type Locator struct {
	catalog domain.Catalog
}

func NewLocator(catalog domain.Catalog) *Locator {
	return &Locator{catalog: catalog}
}

func (l *Locator) Catalog() domain.Catalog { return l.catalog }

// FindNearbyLocations returns every location within radiusKm of origin
// (inclusive), closest first. No bound is imposed on radiusKm.
func (l *Locator) FindNearbyLocations(origin domain.Coordinates, radiusKm float64) []domain.LocationWithDistance {
	annotated := l.annotate(origin)

	out := make([]domain.LocationWithDistance, 0, len(annotated))
	for _, loc := range annotated {
		if loc.Distance <= radiusKm {
			out = append(out, loc)
		}
	}
	sortByDistance(out)

	return out
}

// FindTopNLocations returns the n locations closest to target, or the whole
// catalog when it holds fewer than n entries.
func (l *Locator) FindTopNLocations(target domain.Coordinates, n int) []domain.LocationWithDistance {
	if n <= 0 {
		return []domain.LocationWithDistance{}
	}

	annotated := l.annotate(target)
	sortByDistance(annotated)

	if n > len(annotated) {
		n = len(annotated)
	}
	return annotated[:n:n]
}

func (l *Locator) annotate(p domain.Coordinates) []domain.LocationWithDistance {
	locs := l.catalog.Locations()
	out := make([]domain.LocationWithDistance, 0, len(locs))
	for _, loc := range locs {
		out = append(out, domain.LocationWithDistance{
			Location: loc,
			Distance: domain.Distance(p, loc.Coordinates),
		})
	}
	return out
}

// Equal distances keep catalog order.
func sortByDistance(locs []domain.LocationWithDistance) {
	slices.SortStableFunc(locs, func(a, b domain.LocationWithDistance) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}
