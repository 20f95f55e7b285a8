package domain

import "fmt"

// Catalog is the fixed, read-only list of disposal locations.
// It is loaded once and safe for concurrent reads.
type Catalog struct {
	locations []Location
}

// NewCatalog copies locs into a new Catalog. IDs must be unique.
func NewCatalog(locs []Location) (Catalog, error) {
	seen := make(map[int]struct{}, len(locs))
	out := make([]Location, 0, len(locs))
	for _, l := range locs {
		if _, ok := seen[l.ID]; ok {
			return Catalog{}, fmt.Errorf("new catalog: id=%d: %w", l.ID, ErrDuplicateLocationID)
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}

	return Catalog{locations: out}, nil
}

func (c Catalog) Len() int { return len(c.locations) }

// Locations returns a copy of the catalog entries in load order.
func (c Catalog) Locations() []Location {
	out := make([]Location, len(c.locations))
	copy(out, c.locations)
	return out
}
