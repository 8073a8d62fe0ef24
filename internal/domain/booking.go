package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingWaitlist  BookingStatus = "WAITLIST"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingBoarded   BookingStatus = "BOARDED"
)

// NonTerminal reports whether a booking still occupies a slot (U1/U2).
func (s BookingStatus) NonTerminal() bool {
	return s == BookingConfirmed || s == BookingWaitlist || s == BookingBoarded
}

// Booking is a passenger's claim on a trip's seat.
type Booking struct {
	BookingID        string
	PassengerID      string
	TripID           string
	Status           BookingStatus
	BoardingToken    string
	CreatedAt        time.Time
	BoardedAt        *time.Time
	WaitlistPosition *int
}

type CreateBookingRequest struct {
	TripID string `json:"tripId" binding:"required"`
}

type CreateBookingResponse struct {
	BookingID        string `json:"bookingId"`
	Status           string `json:"status"`
	BoardingToken    string `json:"boardingToken,omitempty"`
	WaitlistPosition *int   `json:"waitlistPosition,omitempty"`
}

type CancelBookingResponse struct {
	Message string `json:"message"`
}

type BookingView struct {
	BookingID        string    `json:"bookingId"`
	TripID           string    `json:"tripId"`
	Status           string    `json:"status"`
	BoardingToken    string    `json:"boardingToken,omitempty"`
	WaitlistPosition *int      `json:"waitlistPosition,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	BoardedAt        *time.Time `json:"boardedAt,omitempty"`
	Direction        string    `json:"direction,omitempty"`
	Destination      string    `json:"destination,omitempty"`
	DepartureTime    time.Time `json:"departureTime,omitempty"`
}

// ALLOC result kinds.
type BookOutcome string

const (
	OutcomeConfirmed BookOutcome = "CONFIRMED"
	OutcomeWaitlist  BookOutcome = "WAITLIST"
)

// BoardingValidationRequest/Response for BV.
type BoardingValidationRequest struct {
	BoardingToken string `json:"boardingToken" binding:"required"`
	TripID        string `json:"tripId" binding:"required"`
}

type BoardingStatus string

const (
	BoardingStatusBoarded        BoardingStatus = "BOARDED"
	BoardingStatusAlreadyBoarded BoardingStatus = "ALREADY_BOARDED"
)

type BoardingValidationResponse struct {
	Valid       bool           `json:"valid"`
	Status      BoardingStatus `json:"status"`
	BookingID   string         `json:"bookingId"`
	PassengerID string         `json:"passengerId"`
}
