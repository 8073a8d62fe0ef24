package controller

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BoardingController exposes BV.
type BoardingController struct {
	boarding service.BoardingService
}

func NewBoardingController(boarding service.BoardingService) *BoardingController {
	return &BoardingController{boarding: boarding}
}

func (ctrl *BoardingController) ValidateBoarding(c *gin.Context) {
	var req domain.BoardingValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrMalformedRequest)
		return
	}

	resp, err := ctrl.boarding.ValidateBoarding(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, resp)
}
