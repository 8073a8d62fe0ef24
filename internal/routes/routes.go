// Package routes wires every controller onto the gin router. Grounded on
// bookings-api's internal/routes/routes.go (route-group-per-realm shape),
// generalized to the three realms this service hosts: passenger, operator,
// and an admin group that borrows operator auth (spec.md §1 never defines a
// fourth account type — trip administration is an operator capability
// here, see DESIGN.md).
package routes

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/controller"
	"github.com/icarusiftctts/campus-bus-backend/internal/middleware"
	"github.com/icarusiftctts/campus-bus-backend/internal/tokens"

	"github.com/gin-gonic/gin"
)

// Controllers bundles every HTTP-facing controller so SetupRoutes takes one
// argument instead of seven.
type Controllers struct {
	Auth      *controller.AuthController
	Trip      *controller.TripController
	Booking   *controller.BookingController
	Operator  *controller.OperatorController
	Boarding  *controller.BoardingController
	Report    *controller.ReportController
	Telemetry *controller.TelemetryController
}

func SetupRoutes(router *gin.Engine, ctrls Controllers, tokenSvc *tokens.Service) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "campus-bus-backend"})
	})

	passenger := router.Group("")
	passenger.Use(middleware.PassengerAuth(tokenSvc))

	operator := router.Group("")
	operator.Use(middleware.OperatorAuth(tokenSvc))

	// Trip administration currently rides on the operator realm; there is
	// no distinct admin account type in the domain model.
	admin := operator

	router.POST("/auth/federated", ctrls.Auth.FederatedLogin)
	passenger.PUT("/auth/complete-profile", ctrls.Auth.CompleteProfile)
	passenger.GET("/profile", ctrls.Auth.GetProfile)

	passenger.GET("/trips/available", ctrls.Trip.ListAvailable)
	passenger.GET("/trips/:id", ctrls.Trip.GetTrip)
	admin.POST("/trips", ctrls.Trip.CreateTrip)
	admin.POST("/admin/trips/:id/cancel", ctrls.Trip.CancelTrip)

	passenger.POST("/bookings", ctrls.Booking.CreateBooking)
	passenger.DELETE("/bookings/:id", ctrls.Booking.CancelBooking)
	passenger.GET("/bookings/history", ctrls.Booking.ListHistory)

	router.POST("/operator/login", ctrls.Operator.Login)
	operator.GET("/operator/trips", ctrls.Operator.ListTrips)
	operator.POST("/operator/trips/start", ctrls.Operator.StartAssignment)
	operator.POST("/operator/trips/end", ctrls.Operator.EndAssignment)
	operator.GET("/operator/trips/:tripId/passengers", ctrls.Operator.ListTripPassengers)
	operator.POST("/operator/reports", ctrls.Report.SubmitReport)
	operator.POST("/operator/gps", ctrls.Telemetry.PublishPosition)

	operator.POST("/boarding/validate", ctrls.Boarding.ValidateBoarding)
}
