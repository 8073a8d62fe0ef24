package service

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/dao"
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/repository"

	"gorm.io/gorm"
)

// BookingQueryService backs read-only booking views that don't belong to
// ALLOC or WLM's mutating surfaces: currently the passenger's booking
// history. Per-trip passenger lists are served by OperatorService.
type BookingQueryService interface {
	ListHistory(passengerID string) ([]domain.BookingView, error)
}

type bookingQueryService struct {
	db       *gorm.DB
	bookings repository.BookingRepository
	trips    repository.TripRepository
}

func NewBookingQueryService(db *gorm.DB, bookings repository.BookingRepository, trips repository.TripRepository) BookingQueryService {
	return &bookingQueryService{db: db, bookings: bookings, trips: trips}
}

// ListHistory returns every booking a passenger has ever held, including
// terminal ones, each enriched with its trip's direction/destination/
// departure time for display (spec.md §6: "array of booking+trip summaries").
func (s *bookingQueryService) ListHistory(passengerID string) ([]domain.BookingView, error) {
	var bookings []dao.Booking
	if err := s.db.Where("passenger_id = ?", passengerID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, domain.ErrInternal
	}

	views := make([]domain.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := toBookingView(b)
		if trip, err := s.trips.FindByID(b.TripID); err == nil {
			view.Direction = trip.Direction
			view.Destination = trip.Destination
			view.DepartureTime = trip.DepartureTime
		}
		views = append(views, view)
	}
	return views, nil
}
