package controller

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthController backs the passenger realm's login, profile completion, and
// profile view endpoints.
type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (ctrl *AuthController) FederatedLogin(c *gin.Context) {
	var req domain.FederatedLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrMalformedRequest)
		return
	}

	resp, err := ctrl.authService.FederatedLogin(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, resp)
}

func (ctrl *AuthController) CompleteProfile(c *gin.Context) {
	passengerID, err := domain.GetPassengerIDFromContext(c)
	if err != nil {
		respondError(c, domain.ErrMissingCredentials)
		return
	}

	var req domain.CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrMalformedRequest)
		return
	}

	if _, err := ctrl.authService.CompleteProfile(passengerID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"profileComplete": true})
}

func (ctrl *AuthController) GetProfile(c *gin.Context) {
	passengerID, err := domain.GetPassengerIDFromContext(c)
	if err != nil {
		respondError(c, domain.ErrMissingCredentials)
		return
	}

	profile, err := ctrl.authService.GetProfile(passengerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, profile)
}
