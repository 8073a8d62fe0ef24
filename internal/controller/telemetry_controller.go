package controller

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TelemetryController exposes TEL.
type TelemetryController struct {
	telemetry service.TelemetryService
}

func NewTelemetryController(telemetry service.TelemetryService) *TelemetryController {
	return &TelemetryController{telemetry: telemetry}
}

func (ctrl *TelemetryController) PublishPosition(c *gin.Context) {
	var req domain.PublishPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrMalformedRequest)
		return
	}

	resp, err := ctrl.telemetry.PublishPosition(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(202, resp)
}
