package controller

import (
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TripController exposes trip administration and the passenger-facing
// availability listing.
type TripController struct {
	trips service.TripService
}

func NewTripController(trips service.TripService) *TripController {
	return &TripController{trips: trips}
}

func (ctrl *TripController) CreateTrip(c *gin.Context) {
	var req domain.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrMalformedRequest)
		return
	}

	resp, err := ctrl.trips.CreateTrip(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, resp)
}

func (ctrl *TripController) ListAvailable(c *gin.Context) {
	direction := c.Query("route")
	dateParam := c.Query("date")

	date := time.Now()
	if dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			respondError(c, domain.ErrMalformedRequest)
			return
		}
		date = parsed
	}

	trips, err := ctrl.trips.ListAvailable(direction, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, trips)
}

func (ctrl *TripController) GetTrip(c *gin.Context) {
	tripID := c.Param("id")

	trip, err := ctrl.trips.GetTrip(tripID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, trip)
}

func (ctrl *TripController) CancelTrip(c *gin.Context) {
	tripID := c.Param("id")

	if err := ctrl.trips.CancelTrip(tripID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"tripId": tripID, "status": "CANCELLED"})
}
