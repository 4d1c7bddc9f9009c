package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

// ExportController serves derived views of an already-generated itinerary.
// The itinerary arrives in the request body; nothing here touches the
// upstream or the database.
type ExportController struct{}

func NewExportController() *ExportController {
	return &ExportController{}
}

func bindItinerary(c *gin.Context) (*response_models.GeneratedItinerary, bool) {
	var itinerary response_models.GeneratedItinerary
	if err := c.ShouldBindJSON(&itinerary); err != nil {
		utils.RespondBindingError(c, err)
		return nil, false
	}
	if strings.TrimSpace(itinerary.Destination) == "" || len(itinerary.Days) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary with destination and days is required")
		return nil, false
	}
	return &itinerary, true
}

// ExportCSV godoc
// @Summary Export an itinerary as CSV
// @Tags Export
// @Accept json
// @Produce plain
// @Param request body response_models.GeneratedItinerary true "Generated itinerary"
// @Success 200 {string} string "CSV rows"
// @Failure 400 {object} utils.APIResponse
// @Router /api/itinerary/export/csv [post]
func (e *ExportController) ExportCSV(c *gin.Context) {
	itinerary, ok := bindItinerary(c)
	if !ok {
		return
	}

	filename := strings.ReplaceAll(itinerary.Destination, " ", "_") + "_itinerary.csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(services.BuildCSV(itinerary)))
}

// MapsURL godoc
// @Summary Build a Google Maps route link for an itinerary
// @Tags Export
// @Accept json
// @Produce json
// @Param request body response_models.GeneratedItinerary true "Generated itinerary"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/itinerary/export/maps-url [post]
func (e *ExportController) MapsURL(c *gin.Context) {
	itinerary, ok := bindItinerary(c)
	if !ok {
		return
	}

	utils.RespondSuccess(c, gin.H{"url": services.BuildMapsURL(itinerary)}, "Maps URL built successfully")
}

// Summary godoc
// @Summary Summarize an itinerary into day buckets and map pins
// @Tags Export
// @Accept json
// @Produce json
// @Param request body response_models.GeneratedItinerary true "Generated itinerary"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/itinerary/export/summary [post]
func (e *ExportController) Summary(c *gin.Context) {
	itinerary, ok := bindItinerary(c)
	if !ok {
		return
	}

	utils.RespondSuccess(c, gin.H{
		"days":         services.SummarizeDays(itinerary),
		"mapLocations": services.ExtractMapLocations(itinerary),
	}, "Itinerary summarized successfully")
}
