package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Trip is a saved itinerary. ItineraryData holds the generated itinerary as
// an opaque jsonb blob; it is never interpreted again server-side. StartDate
// stays a plain string because the client treats it as display input.
type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	Duration    int
	StartDate   string

	ItineraryData datatypes.JSON `gorm:"type:jsonb"`
}
