package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

// ParseItinerary extracts the JSON object embedded in a raw model response
// and validates it into a GeneratedItinerary. Models wrap their output in
// prose or markdown fences often enough that the extraction is greedy: the
// first '{' through the last '}'.
func ParseItinerary(raw string) (*response_models.GeneratedItinerary, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found in response", utils.ErrAIMalformedResponse)
	}

	var itinerary response_models.GeneratedItinerary
	if err := json.Unmarshal([]byte(raw[start:end+1]), &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAIMalformedResponse, err)
	}

	if err := validateItinerary(&itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAIMalformedResponse, err)
	}

	return &itinerary, nil
}

// validateItinerary enforces the itinerary schema on the untrusted model
// output before it reaches clients or storage.
func validateItinerary(it *response_models.GeneratedItinerary) error {
	if it.Destination == "" {
		return fmt.Errorf("missing destination")
	}
	if len(it.Days) == 0 {
		return fmt.Errorf("itinerary contains no days")
	}

	for i, day := range it.Days {
		if day.DayNumber <= 0 {
			return fmt.Errorf("day %d: non-positive dayNumber %d", i+1, day.DayNumber)
		}
		if len(day.Locations) == 0 {
			return fmt.Errorf("day %d has no locations", day.DayNumber)
		}
		for j, loc := range day.Locations {
			if err := validateLocation(loc); err != nil {
				return fmt.Errorf("day %d, location %d: %w", day.DayNumber, j+1, err)
			}
		}
	}

	return nil
}

func validateLocation(loc response_models.Location) error {
	if strings.TrimSpace(loc.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if loc.Type != response_models.LocationTypeRestaurant && loc.Type != response_models.LocationTypeAttraction {
		return fmt.Errorf("invalid type %q", loc.Type)
	}
	if loc.Type == response_models.LocationTypeRestaurant && len(loc.RecommendedDishes) != 3 {
		return fmt.Errorf("restaurant must carry exactly 3 recommended dishes, got %d", len(loc.RecommendedDishes))
	}
	if loc.Lat < -90 || loc.Lat > 90 {
		return fmt.Errorf("latitude %v out of range", loc.Lat)
	}
	if loc.Lng < -180 || loc.Lng > 180 {
		return fmt.Errorf("longitude %v out of range", loc.Lng)
	}
	return nil
}
