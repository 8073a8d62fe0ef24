package controller

import (
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OperatorController exposes OPS: login, trip listing, and assignment
// lifecycle.
type OperatorController struct {
	operators service.OperatorService
}

func NewOperatorController(operators service.OperatorService) *OperatorController {
	return &OperatorController{operators: operators}
}

func (ctrl *OperatorController) Login(c *gin.Context) {
	var req domain.OperatorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrMalformedRequest)
		return
	}

	resp, err := ctrl.operators.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, resp)
}

func (ctrl *OperatorController) ListTrips(c *gin.Context) {
	operatorID, err := domain.GetOperatorIDFromContext(c)
	if err != nil {
		respondError(c, domain.ErrMissingCredentials)
		return
	}

	date := time.Now()
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			respondError(c, domain.ErrMalformedRequest)
			return
		}
		date = parsed
	}

	trips, err := ctrl.operators.ListTrips(operatorID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"trips": trips, "date": date.Format("2006-01-02")})
}

func (ctrl *OperatorController) StartAssignment(c *gin.Context) {
	operatorID, err := domain.GetOperatorIDFromContext(c)
	if err != nil {
		respondError(c, domain.ErrMissingCredentials)
		return
	}

	var req domain.StartAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrMalformedRequest)
		return
	}

	resp, err := ctrl.operators.StartAssignment(operatorID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, resp)
}

func (ctrl *OperatorController) EndAssignment(c *gin.Context) {
	operatorID, err := domain.GetOperatorIDFromContext(c)
	if err != nil {
		respondError(c, domain.ErrMissingCredentials)
		return
	}

	var req domain.EndAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrMalformedRequest)
		return
	}

	if err := ctrl.operators.EndAssignment(operatorID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "COMPLETED"})
}

func (ctrl *OperatorController) ListTripPassengers(c *gin.Context) {
	tripID := c.Param("tripId")

	passengers, err := ctrl.operators.ListTripPassengers(tripID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"tripId": tripID, "passengers": passengers, "totalCount": len(passengers)})
}
