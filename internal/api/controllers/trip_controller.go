package controllers

import (
	"github.com/gin-gonic/gin"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// Save godoc
// @Summary Save an itinerary for the authenticated user
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/itinerary/save [post]
func (t *TripController) Save(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	trip, err := t.tripService.SaveTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Itinerary saved successfully")
}

// List godoc
// @Summary List the authenticated user's saved itineraries, newest first
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.TripResponse}
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/itinerary/saved [get]
func (t *TripController) List(c *gin.Context) {
	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Saved itineraries fetched successfully")
}

// Get godoc
// @Summary Fetch one saved itinerary by id
// @Description A trip owned by another user is reported as not found
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/itinerary/saved/{id} [get]
func (t *TripController) Get(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Saved itinerary fetched successfully")
}

// Delete godoc
// @Summary Delete one saved itinerary by id
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=response_models.DeleteTripResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/itinerary/saved/{id} [delete]
func (t *TripController) Delete(c *gin.Context) {
	err := t.tripService.DeleteTrip(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.DeleteTripResponse{Success: true}, "Itinerary deleted successfully")
}
