package ai

import (
	"fmt"
	"strings"
)

// BuildItineraryPrompt produces the generation instruction for one call.
// Pure; the destination passes through verbatim since it is only ever
// interpreted by the language model, never executed locally.
func BuildItineraryPrompt(destination string, duration int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a travel planning expert. Create a detailed %d-day travel itinerary for %s.\n\n", duration, destination)

	b.WriteString(`For each day, provide 5 activities/places to visit including:
- Breakfast restaurant (around 8:00-9:00 AM)
- Morning attraction (around 10:00-11:00 AM)
- Lunch restaurant (around 12:30-1:30 PM)
- Afternoon attraction (around 3:00-4:00 PM)
- Dinner restaurant (around 7:00-8:00 PM)

For each location, provide:
- name: The actual name of the place
- type: Either "restaurant" or "attraction"
- category: Type of cuisine for restaurants (e.g., "French Bistro", "Italian", "Local Cuisine") or type of attraction (e.g., "Museum", "Landmark", "Park", "Historic Site")
- description: A 1-2 sentence description of what makes this place special
- duration: How long to spend there (e.g., "1 hour", "2-3 hours")
- time: The suggested time to visit in 24h format or AM/PM (e.g., "8:00 AM", "14:00")
- address: The street address
- lat: Latitude coordinate (must be accurate for the actual location)
- lng: Longitude coordinate (must be accurate for the actual location)
- transport: For all locations except the first of the day, include the transport method and duration from the previous location
- recommendedDishes: FOR RESTAURANTS ONLY, include exactly 3 recommended dishes with name and short description

Return ONLY valid JSON in this exact format, no markdown or other text:
`)

	fmt.Fprintf(&b, `{
  "destination": "%s",
  "days": [
    {
      "dayNumber": 1,
      "locations": [
        {
          "id": "day1-loc1",
          "name": "Example Restaurant",
          "type": "restaurant",
          "category": "French Café",
          "description": "A charming café known for fresh pastries.",
          "duration": "1 hour",
          "time": "8:00 AM",
          "address": "123 Main St",
          "lat": 48.8566,
          "lng": 2.3522,
          "recommendedDishes": [
            {"name": "Croissant aux Amandes", "description": "Flaky almond croissant with sweet filling"},
            {"name": "Pain au Chocolat", "description": "Classic chocolate-filled pastry"},
            {"name": "Café Crème", "description": "Rich espresso with steamed milk"}
          ]
        },
        {
          "id": "day1-loc2",
          "name": "Famous Museum",
          "type": "attraction",
          "category": "Museum",
          "description": "World-renowned art museum.",
          "duration": "3 hours",
          "time": "10:00 AM",
          "address": "456 Art Ave",
          "lat": 48.8606,
          "lng": 2.3376,
          "transport": {
            "method": "Walk",
            "duration": "15 min"
          }
        }
      ]
    }
  ]
}`, destination)

	return b.String()
}
