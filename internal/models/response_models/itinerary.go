package response_models

// RecommendedDish is a dish suggestion attached to restaurant locations.
type RecommendedDish struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Transport describes how to reach a location from the previous one in the day.
type Transport struct {
	Method   string `json:"method"`
	Duration string `json:"duration"`
}

// Location is a single restaurant or attraction visit within a day plan.
// Duration and Time are free-text strings as produced by the model; Time is
// only interpreted heuristically by the export service.
type Location struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Type              string            `json:"type"` // "restaurant" | "attraction"
	Category          string            `json:"category"`
	Description       string            `json:"description"`
	Duration          string            `json:"duration"`
	Time              string            `json:"time"`
	Address           string            `json:"address"`
	Lat               float64           `json:"lat"`
	Lng               float64           `json:"lng"`
	Transport         *Transport        `json:"transport,omitempty"`
	RecommendedDishes []RecommendedDish `json:"recommendedDishes,omitempty"`
}

// DayItinerary holds one day's ordered locations. Order is presentation
// order, not guaranteed sorted by Time.
type DayItinerary struct {
	DayNumber int        `json:"dayNumber"`
	Locations []Location `json:"locations"`
}

// GeneratedItinerary is the parsed output of one generation call. It is
// constructed fresh per call and never mutated in place.
type GeneratedItinerary struct {
	Destination string         `json:"destination"`
	Days        []DayItinerary `json:"days"`
}

const (
	LocationTypeRestaurant = "restaurant"
	LocationTypeAttraction = "attraction"
)
