package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type LocationSeed struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	RoadAddress string  `json:"road_address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Phone       string  `json:"phone"`
}

// LoadSeed reads and validates location seed data from a JSON file.
func LoadSeed(jsonPath string) ([]LocationSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var data []LocationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	return validateSeed(data)
}

func validateSeed(data []LocationSeed) ([]LocationSeed, error) {
	seen := make(map[int]struct{}, len(data))
	rows := make([]LocationSeed, 0, len(data))
	for i, item := range data {
		if item.ID <= 0 {
			return nil, fmt.Errorf("load seed: invalid id at index %d: %d", i+1, item.ID)
		}
		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("load seed: duplicate id at index %d: %d", i+1, item.ID)
		}
		seen[item.ID] = struct{}{}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("load seed: item id=%d: name cannot be empty", item.ID)
		}

		addr := strings.TrimSpace(item.RoadAddress)
		if addr == "" {
			return nil, fmt.Errorf("load seed: item id=%d: road_address cannot be empty", item.ID)
		}

		rows = append(rows, LocationSeed{
			ID:          item.ID,
			Name:        name,
			RoadAddress: addr,
			Lat:         item.Lat,
			Lng:         item.Lng,
			Phone:       strings.TrimSpace(item.Phone),
		})
	}

	return rows, nil
}
