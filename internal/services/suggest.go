package services

import "strings"

// DefaultSuggestionLimit caps autocomplete results.
const DefaultSuggestionLimit = 7

// Suggest returns up to limit autocomplete candidates containing query,
// case-insensitively. Candidates are catalog road addresses followed by
// names, de-duplicated in catalog order.
func (l *Locator) Suggest(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return []string{}
	}

	out := make([]string, 0, limit)
	for _, c := range l.suggestionCandidates() {
		if strings.Contains(strings.ToLower(c), q) {
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func (l *Locator) suggestionCandidates() []string {
	locs := l.catalog.Locations()
	seen := make(map[string]struct{}, 2*len(locs))
	out := make([]string, 0, 2*len(locs))

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, loc := range locs {
		add(loc.RoadAddress)
	}
	for _, loc := range locs {
		add(loc.Name)
	}
	return out
}
