package service

import (
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/dao"
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/repository"
)

// TripService covers trip administration and the passenger-facing
// availability listing. Not one of spec.md's named components directly, but
// required plumbing for ALLOC's "resolve trip" step and the /trips surface.
type TripService interface {
	CreateTrip(req domain.CreateTripRequest) (*domain.CreateTripResponse, error)
	ListAvailable(direction string, date time.Time) ([]domain.AvailableTripView, error)
	GetTrip(tripID string) (*domain.AvailableTripView, error)
	CancelTrip(tripID string) error
}

type tripService struct {
	trips    repository.TripRepository
	bookings repository.BookingRepository
}

func NewTripService(trips repository.TripRepository, bookings repository.BookingRepository) TripService {
	return &tripService{trips: trips, bookings: bookings}
}

const dateLayout = "2006-01-02"
const timeLayout = time.RFC3339

func (s *tripService) CreateTrip(req domain.CreateTripRequest) (*domain.CreateTripResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, domain.ErrMalformedRequest
	}
	departure, err := time.Parse(timeLayout, req.DepartureTime)
	if err != nil {
		return nil, domain.ErrMalformedRequest
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = domain.DefaultCapacity
	}
	if capacity > domain.MaxCapacity {
		return nil, domain.ErrMalformedRequest
	}

	facultyReserved := req.FacultyReserved
	if facultyReserved == 0 {
		facultyReserved = domain.DefaultFacultyReserve
	}
	if facultyReserved > capacity/2 {
		return nil, domain.ErrMalformedRequest
	}

	if req.Direction != string(domain.DirectionAToB) && req.Direction != string(domain.DirectionBToA) {
		return nil, domain.ErrMalformedRequest
	}
	if req.DayClass != string(domain.DayClassWeekday) && req.DayClass != string(domain.DayClassWeekend) {
		return nil, domain.ErrMalformedRequest
	}

	trip := &dao.Trip{
		Direction:       req.Direction,
		Destination:     req.Destination,
		BusLabel:        req.BusLabel,
		Date:            date,
		DepartureTime:   departure,
		Capacity:        capacity,
		FacultyReserved: facultyReserved,
		Status:          dao.TripStatusActive,
		DayClass:        req.DayClass,
	}

	if err := s.trips.Create(trip); err != nil {
		return nil, domain.ErrInternal
	}

	return &domain.CreateTripResponse{TripID: trip.TripID}, nil
}

func (s *tripService) ListAvailable(direction string, date time.Time) ([]domain.AvailableTripView, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	trips, err := s.trips.FindAvailable(direction, dayStart, dayEnd)
	if err != nil {
		return nil, domain.ErrInternal
	}

	views := make([]domain.AvailableTripView, 0, len(trips))
	for _, t := range trips {
		view, err := s.toAvailableView(t)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *tripService) GetTrip(tripID string) (*domain.AvailableTripView, error) {
	trip, err := s.trips.FindByID(tripID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.toAvailableView(*trip)
}

// CancelTrip marks a trip CANCELLED so ALLOC's step-2 availability gate
// rejects future book calls against it; it does not itself touch any
// existing booking (cancellation of a booking is always passenger-initiated,
// per the U-invariants).
func (s *tripService) CancelTrip(tripID string) error {
	trip, err := s.trips.FindByID(tripID)
	if err != nil {
		return domain.ErrNotFound
	}
	if trip.Status == dao.TripStatusCancelled {
		return nil
	}
	if err := s.trips.UpdateStatus(tripID, dao.TripStatusCancelled); err != nil {
		return domain.ErrInternal
	}
	return nil
}

func (s *tripService) toAvailableView(t dao.Trip) (*domain.AvailableTripView, error) {
	confirmed, err := s.bookings.FindByTripAndStatus(t.TripID, dao.BookingStatusConfirmed)
	if err != nil {
		return nil, domain.ErrInternal
	}
	boarded, err := s.bookings.FindByTripAndStatus(t.TripID, dao.BookingStatusBoarded)
	if err != nil {
		return nil, domain.ErrInternal
	}
	waitlist, err := s.bookings.FindByTripAndStatus(t.TripID, dao.BookingStatusWaitlist)
	if err != nil {
		return nil, domain.ErrInternal
	}

	bookedCount := len(confirmed) + len(boarded)
	studentSeats := t.Capacity - t.FacultyReserved

	return &domain.AvailableTripView{
		TripID:         t.TripID,
		DepartureTime:  t.DepartureTime,
		Destination:    t.Destination,
		BusLabel:       t.BusLabel,
		Capacity:       t.Capacity,
		BookedCount:    bookedCount,
		WaitlistCount:  len(waitlist),
		AvailableSeats: studentSeats - bookedCount,
		DayClass:       domain.DayClass(t.DayClass),
	}, nil
}
