package domain

import "time"

type Direction string

const (
	DirectionAToB Direction = "A_TO_B"
	DirectionBToA Direction = "B_TO_A"
)

type DayClass string

const (
	DayClassWeekday DayClass = "WEEKDAY"
	DayClassWeekend DayClass = "WEEKEND"
)

type TripStatus string

const (
	TripActive    TripStatus = "ACTIVE"
	TripCancelled TripStatus = "CANCELLED"
	TripCompleted TripStatus = "COMPLETED"
)

const (
	DefaultCapacity       = 35
	MaxCapacity           = 50
	DefaultFacultyReserve = 5
)

// Trip is a scheduled bus run. Immutable after first booking except Status.
type Trip struct {
	TripID          string
	Direction       Direction
	Destination     string
	BusLabel        string
	Date            time.Time
	DepartureTime   time.Time
	Capacity        int
	FacultyReserved int
	Status          TripStatus
	DayClass        DayClass
}

// StudentSeats is the capacity available to passengers once faculty seats
// are deducted. Faculty seats are never released early (spec.md §9).
func (t *Trip) StudentSeats() int {
	return t.Capacity - t.FacultyReserved
}

type CreateTripRequest struct {
	Direction       string `json:"direction" binding:"required"`
	Destination     string `json:"destination"`
	BusLabel        string `json:"busLabel"`
	Date            string `json:"date" binding:"required"`
	DepartureTime   string `json:"departureTime" binding:"required"`
	Capacity        int    `json:"capacity"`
	FacultyReserved int    `json:"facultyReserved"`
	DayClass        string `json:"dayClass" binding:"required"`
}

type CreateTripResponse struct {
	TripID string `json:"tripId"`
}

type AvailableTripView struct {
	TripID         string    `json:"tripId"`
	DepartureTime  time.Time `json:"departureTime"`
	Destination    string    `json:"destination,omitempty"`
	BusLabel       string    `json:"busLabel,omitempty"`
	Capacity       int       `json:"capacity"`
	BookedCount    int       `json:"bookedCount"`
	WaitlistCount  int       `json:"waitlistCount"`
	AvailableSeats int       `json:"availableSeats"`
	DayClass       DayClass  `json:"dayClass"`
}
