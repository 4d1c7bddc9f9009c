package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewExportController()
	r.POST("/api/itinerary/export/csv", controller.ExportCSV)
	r.POST("/api/itinerary/export/maps-url", controller.MapsURL)
	r.POST("/api/itinerary/export/summary", controller.Summary)
	return r
}

const exportItineraryJSON = `{
	"destination": "Porto, Portugal",
	"days": [
		{
			"dayNumber": 1,
			"locations": [
				{"name": "Livraria Lello", "type": "attraction", "time": "9:00 AM", "description": "Bookshop", "lat": 41.1466, "lng": -8.6149},
				{"name": "Cantinho do Avillez", "type": "restaurant", "time": "13:00", "description": "Lunch", "lat": 41.1421, "lng": -8.6136}
			]
		}
	]
}`

func TestExportCSV(t *testing.T) {
	rr := doRequest(newExportRouter(), http.MethodPost, "/api/itinerary/export/csv", exportItineraryJSON)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="Porto,_Portugal_itinerary.csv"`, rr.Header().Get("Content-Disposition"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(strings.TrimRight(rr.Body.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Type,Address", lines[0])
	assert.Equal(t, `"Livraria Lello","attraction","Livraria Lello, Porto, Portugal"`, lines[1])
}

func TestExportMapsURL(t *testing.T) {
	rr := doRequest(newExportRouter(), http.MethodPost, "/api/itinerary/export/maps-url", exportItineraryJSON)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "google.com/maps/dir")
}

func TestExportSummary(t *testing.T) {
	rr := doRequest(newExportRouter(), http.MethodPost, "/api/itinerary/export/summary", exportItineraryJSON)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"mapLocations"`)
	assert.Contains(t, rr.Body.String(), "Morning")
	assert.Contains(t, rr.Body.String(), "Afternoon")
}

func TestExport_RejectsEmptyItinerary(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no days", `{"destination": "Porto", "days": []}`},
		{"blank destination", `{"destination": "  ", "days": [{"dayNumber": 1, "locations": []}]}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, path := range []string{"/api/itinerary/export/csv", "/api/itinerary/export/maps-url", "/api/itinerary/export/summary"} {
				rr := doRequest(newExportRouter(), http.MethodPost, path, tt.body)
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			}
		})
	}
}
