package ai

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wanderlust/pkg/utils"
)

func validItineraryJSON() string {
	return `{
		"destination": "Paris, France",
		"days": [
			{
				"dayNumber": 1,
				"locations": [
					{
						"id": "day1-loc1",
						"name": "Café de Flore",
						"type": "restaurant",
						"category": "French Café",
						"description": "Historic café.",
						"duration": "1 hour",
						"time": "8:00 AM",
						"address": "172 Bd Saint-Germain",
						"lat": 48.854,
						"lng": 2.3325,
						"recommendedDishes": [
							{"name": "Croissant", "description": "Fresh"},
							{"name": "Omelette", "description": "Classic"},
							{"name": "Café Crème", "description": "Rich"}
						]
					},
					{
						"id": "day1-loc2",
						"name": "Louvre",
						"type": "attraction",
						"category": "Museum",
						"description": "World-renowned art museum.",
						"duration": "3 hours",
						"time": "10:00 AM",
						"address": "Rue de Rivoli",
						"lat": 48.8606,
						"lng": 2.3376,
						"transport": {"method": "Walk", "duration": "15 min"}
					}
				]
			}
		]
	}`
}

func TestParseItinerary_ExtractsEmbeddedObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bare json", validItineraryJSON()},
		{"leading and trailing prose", "Here is your itinerary:\n" + validItineraryJSON() + "\nEnjoy your trip!"},
		{"markdown fences", "```json\n" + validItineraryJSON() + "\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itinerary, err := ParseItinerary(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, "Paris, France", itinerary.Destination)
			require.Len(t, itinerary.Days, 1)
			require.Len(t, itinerary.Days[0].Locations, 2)
			assert.Equal(t, "Café de Flore", itinerary.Days[0].Locations[0].Name)
			assert.Equal(t, "Walk", itinerary.Days[0].Locations[1].Transport.Method)
		})
	}
}

func TestParseItinerary_NoJSONObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"prose only", "I cannot create an itinerary for that destination."},
		{"brackets only", "[1, 2, 3]"},
		{"reversed braces", "} nothing here {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItinerary(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, utils.ErrAIMalformedResponse))
		})
	}
}

func TestParseItinerary_InvalidJSON(t *testing.T) {
	_, err := ParseItinerary(`prefix {"destination": "Paris", "days": [} suffix`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrAIMalformedResponse))
}

func TestParseItinerary_SchemaViolations(t *testing.T) {
	location := func(typ string, dishes int, lat, lng float64) string {
		dishJSON := ""
		for i := 0; i < dishes; i++ {
			if i > 0 {
				dishJSON += ","
			}
			dishJSON += `{"name": "Dish", "description": "Tasty"}`
		}
		return fmt.Sprintf(`{
			"id": "day1-loc1", "name": "Somewhere", "type": "%s",
			"category": "X", "description": "Y", "duration": "1 hour",
			"time": "9:00 AM", "address": "Z",
			"lat": %v, "lng": %v,
			"recommendedDishes": [%s]
		}`, typ, lat, lng, dishJSON)
	}
	wrap := func(loc string) string {
		return fmt.Sprintf(`{"destination": "Paris", "days": [{"dayNumber": 1, "locations": [%s]}]}`, loc)
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"no days", `{"destination": "Paris", "days": []}`},
		{"missing destination", `{"days": [{"dayNumber": 1, "locations": []}]}`},
		{"empty day", `{"destination": "Paris", "days": [{"dayNumber": 1, "locations": []}]}`},
		{"non-positive day number", fmt.Sprintf(`{"destination": "Paris", "days": [{"dayNumber": 0, "locations": [%s]}]}`, location("attraction", 0, 1, 1))},
		{"bad type enum", wrap(location("hotel", 0, 1, 1))},
		{"restaurant with two dishes", wrap(location("restaurant", 2, 1, 1))},
		{"restaurant with four dishes", wrap(location("restaurant", 4, 1, 1))},
		{"latitude out of range", wrap(location("attraction", 0, 91, 1))},
		{"longitude out of range", wrap(location("attraction", 0, 1, -181))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItinerary(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, utils.ErrAIMalformedResponse))
		})
	}
}

func TestParseItinerary_AttractionNeedsNoDishes(t *testing.T) {
	raw := `{"destination": "Paris", "days": [{"dayNumber": 1, "locations": [
		{"id": "a", "name": "Louvre", "type": "attraction", "category": "Museum",
		 "description": "d", "duration": "2 hours", "time": "14:00",
		 "address": "x", "lat": 48.86, "lng": 2.34}
	]}]}`
	itinerary, err := ParseItinerary(raw)
	require.NoError(t, err)
	assert.Empty(t, itinerary.Days[0].Locations[0].RecommendedDishes)
}
