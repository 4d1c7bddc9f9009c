package response_models

import "encoding/json"

// TripResponse is a saved itinerary as returned to the client.
type TripResponse struct {
	ID            string          `json:"id"`
	Destination   string          `json:"destination"`
	Duration      int             `json:"duration"`
	StartDate     string          `json:"startDate,omitempty"`
	ItineraryData json.RawMessage `json:"itineraryData"`
	CreatedAt     string          `json:"createdAt"`
}

type DeleteTripResponse struct {
	Success bool `json:"success"`
}
