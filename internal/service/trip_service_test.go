package service

import (
	"testing"
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/dao"
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTrip_DefaultsCapacityAndFacultyReserve(t *testing.T) {
	trips := &fakeTripRepository{byID: map[string]*dao.Trip{}}
	svc := NewTripService(trips, &fakeBookingRepository{})

	resp, err := svc.CreateTrip(domain.CreateTripRequest{
		Direction:     string(domain.DirectionAToB),
		DayClass:      string(domain.DayClassWeekday),
		Date:          "2026-08-03",
		DepartureTime: time.Date(2026, 8, 3, 7, 30, 0, 0, time.UTC).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.TripID)
	require.NotNil(t, trips.created)
	assert.Equal(t, domain.DefaultCapacity, trips.created.Capacity)
	assert.Equal(t, domain.DefaultFacultyReserve, trips.created.FacultyReserved)
}

func TestCreateTrip_RejectsCapacityOverMax(t *testing.T) {
	trips := &fakeTripRepository{byID: map[string]*dao.Trip{}}
	svc := NewTripService(trips, &fakeBookingRepository{})

	_, err := svc.CreateTrip(domain.CreateTripRequest{
		Direction:     string(domain.DirectionAToB),
		DayClass:      string(domain.DayClassWeekday),
		Date:          "2026-08-03",
		DepartureTime: time.Date(2026, 8, 3, 7, 30, 0, 0, time.UTC).Format(time.RFC3339),
		Capacity:      domain.MaxCapacity + 1,
	})
	assert.ErrorIs(t, err, domain.ErrMalformedRequest)
}

func TestCreateTrip_RejectsFacultyReserveOverHalfCapacity(t *testing.T) {
	trips := &fakeTripRepository{byID: map[string]*dao.Trip{}}
	svc := NewTripService(trips, &fakeBookingRepository{})

	_, err := svc.CreateTrip(domain.CreateTripRequest{
		Direction:       string(domain.DirectionAToB),
		DayClass:        string(domain.DayClassWeekday),
		Date:            "2026-08-03",
		DepartureTime:   time.Date(2026, 8, 3, 7, 30, 0, 0, time.UTC).Format(time.RFC3339),
		Capacity:        10,
		FacultyReserved: 6,
	})
	assert.ErrorIs(t, err, domain.ErrMalformedRequest)
}

func TestCreateTrip_RejectsUnknownDirection(t *testing.T) {
	trips := &fakeTripRepository{byID: map[string]*dao.Trip{}}
	svc := NewTripService(trips, &fakeBookingRepository{})

	_, err := svc.CreateTrip(domain.CreateTripRequest{
		Direction:     "SIDEWAYS",
		DayClass:      string(domain.DayClassWeekday),
		Date:          "2026-08-03",
		DepartureTime: time.Date(2026, 8, 3, 7, 30, 0, 0, time.UTC).Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, domain.ErrMalformedRequest)
}

func TestCreateTrip_RejectsMalformedDate(t *testing.T) {
	trips := &fakeTripRepository{byID: map[string]*dao.Trip{}}
	svc := NewTripService(trips, &fakeBookingRepository{})

	_, err := svc.CreateTrip(domain.CreateTripRequest{
		Direction:     string(domain.DirectionAToB),
		DayClass:      string(domain.DayClassWeekday),
		Date:          "not-a-date",
		DepartureTime: time.Now().Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, domain.ErrMalformedRequest)
}

func TestGetTrip_ComputesAvailableSeats(t *testing.T) {
	trip := &dao.Trip{TripID: "trip-1", Capacity: 40, FacultyReserved: 5, Direction: string(domain.DirectionAToB)}
	trips := &fakeTripRepository{byID: map[string]*dao.Trip{"trip-1": trip}}
	bookings := &fakeBookingRepository{byTripAndStatus: map[string][]dao.Booking{
		"trip-1:" + dao.BookingStatusConfirmed: {{BookingID: "b1"}, {BookingID: "b2"}},
		"trip-1:" + dao.BookingStatusBoarded:   {{BookingID: "b3"}},
		"trip-1:" + dao.BookingStatusWaitlist:  {{BookingID: "b4"}},
	}}
	svc := NewTripService(trips, bookings)

	view, err := svc.GetTrip("trip-1")
	require.NoError(t, err)
	assert.Equal(t, 3, view.BookedCount)
	assert.Equal(t, 1, view.WaitlistCount)
	assert.Equal(t, 35-3, view.AvailableSeats)
}

func TestGetTrip_NotFound(t *testing.T) {
	trips := &fakeTripRepository{byID: map[string]*dao.Trip{}}
	svc := NewTripService(trips, &fakeBookingRepository{})

	_, err := svc.GetTrip("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelTrip_MarksCancelled(t *testing.T) {
	trip := &dao.Trip{TripID: "trip-1", Status: dao.TripStatusActive}
	trips := &fakeTripRepository{byID: map[string]*dao.Trip{"trip-1": trip}}
	svc := NewTripService(trips, &fakeBookingRepository{})

	err := svc.CancelTrip("trip-1")
	require.NoError(t, err)
	assert.Equal(t, dao.TripStatusCancelled, trips.byID["trip-1"].Status)
}

func TestCancelTrip_IdempotentWhenAlreadyCancelled(t *testing.T) {
	trip := &dao.Trip{TripID: "trip-1", Status: dao.TripStatusCancelled}
	trips := &fakeTripRepository{byID: map[string]*dao.Trip{"trip-1": trip}}
	svc := NewTripService(trips, &fakeBookingRepository{})

	err := svc.CancelTrip("trip-1")
	assert.NoError(t, err)
}
