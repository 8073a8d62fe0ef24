package controller

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingController exposes ALLOC and WLM over HTTP.
type BookingController struct {
	allocator service.AllocatorService
	waitlist  service.WaitlistService
	query     service.BookingQueryService
}

func NewBookingController(allocator service.AllocatorService, waitlist service.WaitlistService, query service.BookingQueryService) *BookingController {
	return &BookingController{allocator: allocator, waitlist: waitlist, query: query}
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	passengerID, err := domain.GetPassengerIDFromContext(c)
	if err != nil {
		respondError(c, domain.ErrMissingCredentials)
		return
	}

	var req domain.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrMalformedRequest)
		return
	}

	resp, err := ctrl.allocator.Book(c.Request.Context(), passengerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, resp)
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	passengerID, err := domain.GetPassengerIDFromContext(c)
	if err != nil {
		respondError(c, domain.ErrMissingCredentials)
		return
	}

	bookingID := c.Param("id")

	resp, err := ctrl.waitlist.Cancel(c.Request.Context(), passengerID, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, resp)
}

func (ctrl *BookingController) ListHistory(c *gin.Context) {
	passengerID, err := domain.GetPassengerIDFromContext(c)
	if err != nil {
		respondError(c, domain.ErrMissingCredentials)
		return
	}

	history, err := ctrl.query.ListHistory(passengerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, history)
}
