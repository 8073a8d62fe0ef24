package service

import (
	"context"
	"fmt"
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/coord"
	"github.com/icarusiftctts/campus-bus-backend/internal/dao"
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/repository"
	"github.com/icarusiftctts/campus-bus-backend/internal/tokens"

	"gorm.io/gorm"
)

const bookLockTTL = 30 * time.Second

// AllocatorService is ALLOC: admits or waitlists a booking request against a
// trip's capacity and faculty reservation.
type AllocatorService interface {
	Book(ctx context.Context, passengerID string, req domain.CreateBookingRequest) (*domain.CreateBookingResponse, error)
}

type allocatorService struct {
	db          *gorm.DB
	locker      coord.Locker
	tokens      *tokens.Service
	passengers  repository.PassengerRepository
	trips       repository.TripRepository
	bookings    repository.BookingRepository
}

func NewAllocatorService(
	db *gorm.DB,
	locker coord.Locker,
	tokenSvc *tokens.Service,
	passengers repository.PassengerRepository,
	trips repository.TripRepository,
	bookings repository.BookingRepository,
) AllocatorService {
	return &allocatorService{
		db:         db,
		locker:     locker,
		tokens:     tokenSvc,
		passengers: passengers,
		trips:      trips,
		bookings:   bookings,
	}
}

// Book implements spec.md §4.3 step by step: resolve passenger and trip,
// pre-check U1/U2 outside the lock as a fast-path rejection, acquire the
// per-trip COORD token, then re-check and commit inside a single IDS
// transaction. The transactional re-check is authoritative; the COORD token
// only keeps contending requests from doing redundant work.
func (s *allocatorService) Book(ctx context.Context, passengerID string, req domain.CreateBookingRequest) (*domain.CreateBookingResponse, error) {
	passenger, err := s.passengers.FindByID(passengerID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if passenger.Blocked(time.Now()) {
		return nil, domain.ErrBlocked
	}

	trip, err := s.trips.FindByID(req.TripID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if trip.Status != dao.TripStatusActive || trip.DepartureTime.Before(time.Now()) {
		return nil, domain.ErrTripUnavailable
	}

	if _, err := s.bookings.FindActiveByPassengerAndTrip(s.db, passengerID, trip.TripID); err == nil {
		return nil, domain.ErrDuplicateForTrip
	}
	if dup, err := s.hasActiveBookingForDirection(s.db, s.bookings, s.trips, passengerID, trip.Direction, trip.TripID); err != nil {
		return nil, err
	} else if dup {
		return nil, domain.ErrDuplicateForDir
	}

	// U2 (direction uniqueness) spans every trip the passenger might book,
	// not just this one, so the trip-scoped lock below can't serialize it
	// alone: a passenger-scoped section is acquired first (DESIGN.md U2),
	// then the trip-scoped one, and both are released on every exit path.
	passengerLockKey := fmt.Sprintf("book:passenger:%s", passengerID)
	passengerToken, ok, err := s.locker.Acquire(ctx, passengerLockKey, bookLockTTL)
	if err != nil {
		return nil, domain.ErrStoreUnavailable
	}
	if !ok {
		return nil, domain.ErrConcurrentRequest
	}
	defer s.locker.Release(context.Background(), passengerLockKey, passengerToken)

	lockKey := fmt.Sprintf("book:%s", trip.TripID)
	token, ok, err := s.locker.Acquire(ctx, lockKey, bookLockTTL)
	if err != nil {
		return nil, domain.ErrStoreUnavailable
	}
	if !ok {
		return nil, domain.ErrConcurrentRequest
	}
	defer s.locker.Release(context.Background(), lockKey, token)

	var resp *domain.CreateBookingResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		bookings := s.bookings.WithTx(tx)
		tripsTx := s.trips.WithTx(tx)

		lockedTrip, err := tripsTx.FindByIDForUpdate(tx, trip.TripID)
		if err != nil {
			return domain.ErrNotFound
		}

		if _, err := bookings.FindActiveByPassengerAndTrip(tx, passengerID, lockedTrip.TripID); err == nil {
			return domain.ErrDuplicateForTrip
		}

		if dup, err := s.hasActiveBookingForDirection(tx, bookings, tripsTx, passengerID, lockedTrip.Direction, lockedTrip.TripID); err != nil {
			return err
		} else if dup {
			return domain.ErrDuplicateForDir
		}

		confirmedCount, err := bookings.CountConfirmedByTrip(tx, lockedTrip.TripID)
		if err != nil {
			return domain.ErrInternal
		}

		studentSeats := int64(lockedTrip.Capacity - lockedTrip.FacultyReserved)

		booking := &dao.Booking{
			PassengerID: passengerID,
			TripID:      lockedTrip.TripID,
		}

		if confirmedCount < studentSeats {
			booking.Status = dao.BookingStatusConfirmed
			if err := bookings.Create(booking); err != nil {
				return domain.ErrInternal
			}

			boardingToken, err := s.tokens.IssueBoarding(booking.BookingID, lockedTrip.TripID, passengerID, lockedTrip.DepartureTime.Add(24*time.Hour))
			if err != nil {
				return domain.ErrInternal
			}
			booking.BoardingToken = boardingToken
			if err := bookings.Update(tx, booking); err != nil {
				return domain.ErrInternal
			}

			resp = &domain.CreateBookingResponse{
				BookingID:     booking.BookingID,
				Status:        string(domain.BookingConfirmed),
				BoardingToken: boardingToken,
			}
			return nil
		}

		nextPos, err := s.nextWaitlistPosition(tx, lockedTrip.TripID)
		if err != nil {
			return domain.ErrInternal
		}
		booking.Status = dao.BookingStatusWaitlist
		booking.WaitlistPosition = &nextPos
		if err := bookings.Create(booking); err != nil {
			return domain.ErrInternal
		}

		resp = &domain.CreateBookingResponse{
			BookingID:        booking.BookingID,
			Status:           string(domain.BookingWaitlist),
			WaitlistPosition: &nextPos,
		}
		return nil
	})

	if err != nil {
		return nil, domain.AsAppError(err)
	}
	return resp, nil
}

// hasActiveBookingForDirection enforces U2 by scanning the passenger's
// non-terminal bookings for any trip sharing lockedTrip's direction. Safe
// against concurrent book() calls for the same passenger because Book
// already holds the per-passenger COORD section for the whole transaction
// (see DESIGN.md U2); this scan is what runs while holding it.
func (s *allocatorService) hasActiveBookingForDirection(tx *gorm.DB, bookings repository.BookingRepository, trips repository.TripRepository, passengerID string, direction string, excludeTripID string) (bool, error) {
	active, err := bookings.FindActiveByPassenger(passengerID)
	if err != nil {
		return false, domain.ErrInternal
	}
	for _, b := range active {
		if b.TripID == excludeTripID {
			continue
		}
		t, err := trips.FindByID(b.TripID)
		if err != nil {
			continue
		}
		if t.Direction == direction {
			return true, nil
		}
	}
	return false, nil
}

func (s *allocatorService) nextWaitlistPosition(tx *gorm.DB, tripID string) (int, error) {
	var max *int
	err := tx.Model(&dao.Booking{}).
		Where("trip_id = ? AND status = ?", tripID, dao.BookingStatusWaitlist).
		Select("MAX(waitlist_position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}
