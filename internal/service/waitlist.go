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

const cancelLockTTL = 30 * time.Second

// WaitlistService is WLM: cancellation plus FIFO promotion, kept inside the
// same transaction as the cancel itself (spec.md §9: "no async fan-out").
type WaitlistService interface {
	Cancel(ctx context.Context, passengerID, bookingID string) (*domain.CancelBookingResponse, error)
}

type waitlistService struct {
	db       *gorm.DB
	locker   coord.Locker
	tokens   *tokens.Service
	trips    repository.TripRepository
	bookings repository.BookingRepository
}

func NewWaitlistService(
	db *gorm.DB,
	locker coord.Locker,
	tokenSvc *tokens.Service,
	trips repository.TripRepository,
	bookings repository.BookingRepository,
) WaitlistService {
	return &waitlistService{db: db, locker: locker, tokens: tokenSvc, trips: trips, bookings: bookings}
}

func (s *waitlistService) Cancel(ctx context.Context, passengerID, bookingID string) (*domain.CancelBookingResponse, error) {
	booking, err := s.bookings.FindByID(bookingID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if booking.PassengerID != passengerID {
		return nil, domain.ErrForbidden
	}
	if booking.Status == dao.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}
	if booking.Status == dao.BookingStatusBoarded {
		return nil, domain.ErrAlreadyBoarded
	}

	lockKey := fmt.Sprintf("cancel:%s", booking.TripID)
	token, ok, err := s.locker.Acquire(ctx, lockKey, cancelLockTTL)
	if err != nil {
		return nil, domain.ErrStoreUnavailable
	}
	if !ok {
		return nil, domain.ErrConcurrentRequest
	}
	defer s.locker.Release(context.Background(), lockKey, token)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		bookings := s.bookings.WithTx(tx)

		locked, err := bookings.FindByIDForUpdate(tx, bookingID)
		if err != nil {
			return domain.ErrNotFound
		}
		if locked.Status == dao.BookingStatusCancelled {
			return domain.ErrAlreadyCancelled
		}
		if locked.Status == dao.BookingStatusBoarded {
			return domain.ErrAlreadyBoarded
		}

		wasConfirmed := locked.Status == dao.BookingStatusConfirmed
		cancelledPosition := locked.WaitlistPosition

		locked.Status = dao.BookingStatusCancelled
		locked.WaitlistPosition = nil
		if err := bookings.Update(tx, locked); err != nil {
			return domain.ErrInternal
		}

		var promotedFrom *int
		if wasConfirmed {
			head, err := bookings.FindWaitlistHead(tx, locked.TripID)
			if err == nil {
				trip, terr := s.trips.FindByID(locked.TripID)
				if terr != nil {
					return domain.ErrInternal
				}

				boardingToken, ierr := s.tokens.IssueBoarding(head.BookingID, trip.TripID, head.PassengerID, trip.DepartureTime.Add(24*time.Hour))
				if ierr != nil {
					return domain.ErrInternal
				}

				promotedFrom = head.WaitlistPosition
				head.Status = dao.BookingStatusConfirmed
				head.WaitlistPosition = nil
				head.BoardingToken = boardingToken
				if err := bookings.Update(tx, head); err != nil {
					return domain.ErrInternal
				}
			}
		} else {
			promotedFrom = cancelledPosition
		}

		if promotedFrom != nil {
			if err := tx.Model(&dao.Booking{}).
				Where("trip_id = ? AND status = ? AND waitlist_position > ?", locked.TripID, dao.BookingStatusWaitlist, *promotedFrom).
				UpdateColumn("waitlist_position", gorm.Expr("waitlist_position - 1")).Error; err != nil {
				return domain.ErrInternal
			}
		}

		return nil
	})

	if err != nil {
		return nil, domain.AsAppError(err)
	}

	return &domain.CancelBookingResponse{Message: "booking cancelled"}, nil
}
