package services

import (
	"fmt"
	"net/url"
	"strings"

	"wanderlust/internal/models/response_models"
)

// TimeBucket partitions a day by the heuristic hour parsed from a
// location's free-text time field.
type TimeBucket string

const (
	BucketMorning   TimeBucket = "Morning"
	BucketAfternoon TimeBucket = "Afternoon"
	BucketEvening   TimeBucket = "Evening"
)

// MapLocation is a location carrying its day association for aggregate
// display.
type MapLocation struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Day  int     `json:"day"`
	Type string  `json:"type"`
}

// DaySummary groups one day's locations into time-of-day buckets.
type DaySummary struct {
	DayNumber int                                  `json:"dayNumber"`
	Buckets   map[TimeBucket][]response_models.Location `json:"buckets"`
}

const maxRouteWaypoints = 10

// ParseHour extracts the heuristic hour from a free-text time value: the
// leading digits before the first colon. Values with no leading digit
// ("Noon") default to 0, and AM/PM suffixes without a colon ("7 PM") are
// read as their bare digits. This is a documented heuristic, not a
// guarantee.
func ParseHour(timeText string) int {
	head, _, _ := strings.Cut(timeText, ":")
	head = strings.TrimSpace(head)

	digits := 0
	for digits < len(head) && head[digits] >= '0' && head[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0
	}

	hour := 0
	for _, ch := range head[:digits] {
		hour = hour*10 + int(ch-'0')
	}
	return hour
}

// BucketOf places an hour into its time-of-day bucket.
func BucketOf(hour int) TimeBucket {
	switch {
	case hour < 12:
		return BucketMorning
	case hour < 18:
		return BucketAfternoon
	default:
		return BucketEvening
	}
}

// SummarizeDays buckets every day's locations by time of day, preserving
// within-bucket order.
func SummarizeDays(itinerary *response_models.GeneratedItinerary) []DaySummary {
	summaries := make([]DaySummary, 0, len(itinerary.Days))
	for _, day := range itinerary.Days {
		buckets := map[TimeBucket][]response_models.Location{}
		for _, loc := range day.Locations {
			bucket := BucketOf(ParseHour(loc.Time))
			buckets[bucket] = append(buckets[bucket], loc)
		}
		summaries = append(summaries, DaySummary{
			DayNumber: day.DayNumber,
			Buckets:   buckets,
		})
	}
	return summaries
}

// ExtractMapLocations keeps locations that carry both coordinates, tagged
// with their day. Zero-valued coordinates are treated as missing.
func ExtractMapLocations(itinerary *response_models.GeneratedItinerary) []MapLocation {
	var pins []MapLocation
	for _, day := range itinerary.Days {
		for _, loc := range day.Locations {
			if loc.Lat == 0 && loc.Lng == 0 {
				continue
			}
			pins = append(pins, MapLocation{
				ID:   loc.ID,
				Name: loc.Name,
				Lat:  loc.Lat,
				Lng:  loc.Lng,
				Day:  day.DayNumber,
				Type: loc.Type,
			})
		}
	}
	return pins
}

// BuildMapsURL builds a Google Maps deep link from the first ten locations
// across all days in visit order. A single stop becomes a search link;
// more become a walking-directions link with the middle stops as
// waypoints. Each waypoint name carries the destination for
// disambiguation.
func BuildMapsURL(itinerary *response_models.GeneratedItinerary) string {
	var waypoints []string
	for _, day := range itinerary.Days {
		for _, loc := range day.Locations {
			if len(waypoints) == maxRouteWaypoints {
				break
			}
			waypoints = append(waypoints, url.QueryEscape(fmt.Sprintf("%s, %s", loc.Name, itinerary.Destination)))
		}
	}

	if len(waypoints) == 0 {
		return ""
	}
	if len(waypoints) == 1 {
		return "https://www.google.com/maps/search/?api=1&query=" + waypoints[0]
	}

	origin := waypoints[0]
	dest := waypoints[len(waypoints)-1]
	middle := strings.Join(waypoints[1:len(waypoints)-1], "|")

	mapsURL := fmt.Sprintf("https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s", origin, dest)
	if middle != "" {
		mapsURL += "&waypoints=" + middle
	}
	return mapsURL + "&travelmode=walking"
}

// BuildCSV renders locations as comma-delimited rows with every field
// double-quote-wrapped and the address synthesized as "name, destination".
// Embedded quote characters are not escaped.
func BuildCSV(itinerary *response_models.GeneratedItinerary) string {
	lines := []string{"Name,Type,Address"}
	for _, day := range itinerary.Days {
		for _, loc := range day.Locations {
			address := loc.Name + ", " + itinerary.Destination
			lines = append(lines, `"`+loc.Name+`","`+loc.Type+`","`+address+`"`)
		}
	}
	return strings.Join(lines, "\n")
}
