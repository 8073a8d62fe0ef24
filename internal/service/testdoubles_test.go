package service

import (
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/dao"
	"github.com/icarusiftctts/campus-bus-backend/internal/repository"
	"github.com/icarusiftctts/campus-bus-backend/internal/tokens"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func testTokenSvc() *tokens.Service {
	return tokens.NewService(tokens.Secrets{Passenger: "p", Operator: "o", Boarding: "b"})
}

// fakeTripRepository backs the TripRepository interface for tests that don't
// need a real MySQL connection (TripService, OperatorService.ListTrips).
type fakeTripRepository struct {
	byID      map[string]*dao.Trip
	available []dao.Trip
	created   *dao.Trip
}

var _ repository.TripRepository = (*fakeTripRepository)(nil)

func (f *fakeTripRepository) Create(trip *dao.Trip) error {
	if trip.TripID == "" {
		trip.TripID = "trip-1"
	}
	f.created = trip
	return nil
}

func (f *fakeTripRepository) FindByID(tripID string) (*dao.Trip, error) {
	t, ok := f.byID[tripID]
	if !ok {
		return nil, assert.AnError
	}
	return t, nil
}

func (f *fakeTripRepository) FindByIDForUpdate(tx *gorm.DB, tripID string) (*dao.Trip, error) {
	return f.FindByID(tripID)
}

func (f *fakeTripRepository) FindAvailable(direction string, from, to time.Time) ([]dao.Trip, error) {
	return f.available, nil
}

func (f *fakeTripRepository) Update(trip *dao.Trip) error { return nil }

func (f *fakeTripRepository) UpdateStatus(tripID string, status string) error {
	if t, ok := f.byID[tripID]; ok {
		t.Status = status
	}
	return nil
}

func (f *fakeTripRepository) WithTx(tx *gorm.DB) repository.TripRepository { return f }

// fakeBookingRepository backs the BookingRepository interface for the
// read-only paths TripService and OperatorService.ListTripPassengers use.
type fakeBookingRepository struct {
	byTripAndStatus map[string][]dao.Booking
	active          []dao.Booking
}

var _ repository.BookingRepository = (*fakeBookingRepository)(nil)

func (f *fakeBookingRepository) Create(booking *dao.Booking) error { return nil }

func (f *fakeBookingRepository) FindByID(bookingID string) (*dao.Booking, error) {
	return nil, assert.AnError
}

func (f *fakeBookingRepository) FindByIDForUpdate(tx *gorm.DB, bookingID string) (*dao.Booking, error) {
	return nil, assert.AnError
}

func (f *fakeBookingRepository) FindActiveByPassengerAndTrip(tx *gorm.DB, passengerID, tripID string) (*dao.Booking, error) {
	return nil, assert.AnError
}

func (f *fakeBookingRepository) CountConfirmedByTrip(tx *gorm.DB, tripID string) (int64, error) {
	return 0, nil
}

func (f *fakeBookingRepository) FindWaitlistHead(tx *gorm.DB, tripID string) (*dao.Booking, error) {
	return nil, assert.AnError
}

func (f *fakeBookingRepository) FindActiveByPassenger(passengerID string) ([]dao.Booking, error) {
	return f.active, nil
}

func (f *fakeBookingRepository) FindByTripAndStatus(tripID string, status string) ([]dao.Booking, error) {
	return f.byTripAndStatus[tripID+":"+status], nil
}

func (f *fakeBookingRepository) Update(tx *gorm.DB, booking *dao.Booking) error { return nil }

func (f *fakeBookingRepository) WithTx(tx *gorm.DB) repository.BookingRepository { return f }
