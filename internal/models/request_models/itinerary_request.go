package request_models

import "encoding/json"

// GenerateItineraryRequest is validated before any upstream call is made;
// the duration bounds mirror what the prompt can sensibly ask for.
type GenerateItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	Duration    int    `json:"duration" binding:"required,gte=1,lte=30"`
}

type SaveTripRequest struct {
	Destination   string          `json:"destination" binding:"required"`
	Duration      int             `json:"duration" binding:"required,gte=1"`
	StartDate     string          `json:"startDate"`
	ItineraryData json.RawMessage `json:"itineraryData" binding:"required"`
}
