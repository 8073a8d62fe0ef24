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

const scanLockTTL = 30 * time.Second

// BoardingService is BV: validates a presented boarding token against a live
// booking for a specific trip. A second scan of an already-boarded booking
// is a success, never an AppError (see domain.BoardingValidationResponse).
type BoardingService interface {
	ValidateBoarding(ctx context.Context, req domain.BoardingValidationRequest) (*domain.BoardingValidationResponse, error)
}

type boardingService struct {
	db       *gorm.DB
	locker   coord.Locker
	tokens   *tokens.Service
	bookings repository.BookingRepository
}

func NewBoardingService(
	db *gorm.DB,
	locker coord.Locker,
	tokenSvc *tokens.Service,
	bookings repository.BookingRepository,
) BoardingService {
	return &boardingService{db: db, locker: locker, tokens: tokenSvc, bookings: bookings}
}

func (s *boardingService) ValidateBoarding(ctx context.Context, req domain.BoardingValidationRequest) (*domain.BoardingValidationResponse, error) {
	claims, err := s.tokens.Verify(req.BoardingToken, tokens.KindBoarding)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.TripID != req.TripID {
		return nil, domain.ErrWrongTrip
	}

	bookingID := claims.Subject
	lockKey := fmt.Sprintf("scan:%s", bookingID)
	token, ok, err := s.locker.Acquire(ctx, lockKey, scanLockTTL)
	if err != nil {
		return nil, domain.ErrStoreUnavailable
	}
	if !ok {
		return nil, domain.ErrConcurrentScan
	}
	defer s.locker.Release(context.Background(), lockKey, token)

	var resp *domain.BoardingValidationResponse

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		bookings := s.bookings.WithTx(tx)

		locked, err := bookings.FindByIDForUpdate(tx, bookingID)
		if err != nil {
			return domain.ErrNotFound
		}
		if locked.TripID != req.TripID {
			return domain.ErrNotFound
		}

		if locked.Status == dao.BookingStatusBoarded {
			resp = &domain.BoardingValidationResponse{
				Valid:       true,
				Status:      domain.BoardingStatusAlreadyBoarded,
				BookingID:   locked.BookingID,
				PassengerID: locked.PassengerID,
			}
			return nil
		}

		if locked.Status != dao.BookingStatusConfirmed {
			return domain.ErrNotEligible
		}

		now := time.Now()
		locked.Status = dao.BookingStatusBoarded
		locked.BoardedAt = &now
		if err := bookings.Update(tx, locked); err != nil {
			return domain.ErrInternal
		}

		resp = &domain.BoardingValidationResponse{
			Valid:       true,
			Status:      domain.BoardingStatusBoarded,
			BookingID:   locked.BookingID,
			PassengerID: locked.PassengerID,
		}
		return nil
	})

	if txErr != nil {
		return nil, domain.AsAppError(txErr)
	}

	return resp, nil
}
