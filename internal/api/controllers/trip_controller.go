package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// GenerateTrip godoc
// @Summary Generate a trip plan
// @Description Build a prompt from the trip selection, call the language model and return the parsed plan
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.GenerateTripRequest true "Trip selection"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/generateTrip [post]
func (t *TripController) GenerateTrip(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	plan, err := t.tripService.GenerateTrip(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		case errors.Is(err, utils.ErrMalformedModelOutput):
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI returned invalid JSON. Please try again."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trip"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tripData": plan})
}

// SaveTrip godoc
// @Summary Save a generated trip
// @Description Persist a generated plan and the selection that produced it for the authenticated user
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Plan and selection"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips [post]
func (t *TripController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "tripData and userSelection are required")
		return
	}

	tripId, err := t.tripService.SaveTrip(c.Request.Context(), req, c.GetString("user_id"), c.GetString("user_email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": tripId}, "Trip saved successfully")
}

// GetMyTrips godoc
// @Summary List the caller's trips
// @Description Fetch all trips owned by the authenticated user, newest first
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/my-trips [get]
func (t *TripController) GetMyTrips(c *gin.Context) {
	trips, err := t.tripService.GetTripsByOwner(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTripById godoc
// @Summary Get a trip by ID
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId} [get]
func (t *TripController) GetTripById(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTripById(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip by ID
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
