package controllers

import (
	"github.com/gin-gonic/gin"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate godoc
// @Summary Generate a travel itinerary
// @Description Generate a multi-day itinerary for a destination via the AI backend
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Destination and duration in days"
// @Success 200 {object} utils.APIResponse{data=response_models.GeneratedItinerary}
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/itinerary/generate [post]
func (i *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req.Destination, req.Duration)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
