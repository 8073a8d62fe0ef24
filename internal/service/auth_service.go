package service

import (
	"strings"

	"github.com/icarusiftctts/campus-bus-backend/internal/dao"
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/repository"
	"github.com/icarusiftctts/campus-bus-backend/internal/tokens"

	"gorm.io/gorm"
)

// AuthService covers the passenger realm: federated login (trusting an
// already-validated email claim, per spec.md §1's "external federated
// identity" boundary), profile completion, and profile retrieval.
type AuthService interface {
	FederatedLogin(req domain.FederatedLoginRequest) (*domain.FederatedLoginResponse, error)
	CompleteProfile(passengerID string, req domain.CompleteProfileRequest) (*domain.ProfileResponse, error)
	GetProfile(passengerID string) (*domain.ProfileResponse, error)
}

type authService struct {
	db                 *gorm.DB
	tokens             *tokens.Service
	passengers         repository.PassengerRepository
	bookings           repository.BookingRepository
	allowedEmailDomain string
}

func NewAuthService(
	db *gorm.DB,
	tokenSvc *tokens.Service,
	passengers repository.PassengerRepository,
	bookings repository.BookingRepository,
	allowedEmailDomain string,
) AuthService {
	return &authService{
		db:                 db,
		tokens:             tokenSvc,
		passengers:         passengers,
		bookings:           bookings,
		allowedEmailDomain: allowedEmailDomain,
	}
}

// FederatedLogin creates the passenger record on first sight of a validated
// email claim and mints a passenger-session token either way.
func (s *authService) FederatedLogin(req domain.FederatedLoginRequest) (*domain.FederatedLoginResponse, error) {
	if s.allowedEmailDomain != "" && !strings.HasSuffix(strings.ToLower(req.Email), "@"+s.allowedEmailDomain) {
		return nil, domain.ErrDomainNotAllowed
	}

	isNewUser := false
	passenger, err := s.passengers.FindByEmail(req.Email)
	if err != nil {
		passenger = &dao.Passenger{
			Email:       req.Email,
			DisplayName: req.DisplayName,
		}
		if err := s.passengers.Create(passenger); err != nil {
			return nil, domain.ErrInternal
		}
		isNewUser = true
	}

	token, err := s.tokens.IssuePassengerSession(passenger.PassengerID, passenger.Email)
	if err != nil {
		return nil, domain.ErrInternal
	}

	profileComplete := passenger.Room != "" && passenger.Phone != ""

	return &domain.FederatedLoginResponse{
		PassengerID:     passenger.PassengerID,
		Token:           token,
		IsNewUser:       isNewUser,
		ProfileComplete: profileComplete,
	}, nil
}

func (s *authService) CompleteProfile(passengerID string, req domain.CompleteProfileRequest) (*domain.ProfileResponse, error) {
	passenger, err := s.passengers.FindByID(passengerID)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	passenger.Room = req.Room
	passenger.Phone = req.Phone
	if err := s.passengers.Update(passenger); err != nil {
		return nil, domain.ErrInternal
	}

	return s.toProfileResponse(passenger)
}

func (s *authService) GetProfile(passengerID string) (*domain.ProfileResponse, error) {
	passenger, err := s.passengers.FindByID(passengerID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.toProfileResponse(passenger)
}

func (s *authService) toProfileResponse(passenger *dao.Passenger) (*domain.ProfileResponse, error) {
	active, err := s.bookings.FindActiveByPassenger(passenger.PassengerID)
	if err != nil {
		return nil, domain.ErrInternal
	}

	views := make([]*domain.BookingView, 0, len(active))
	for _, b := range active {
		v := toBookingView(b)
		views = append(views, &v)
	}

	return &domain.ProfileResponse{
		PassengerID:    passenger.PassengerID,
		Email:          passenger.Email,
		DisplayName:    passenger.DisplayName,
		Room:           passenger.Room,
		Phone:          passenger.Phone,
		PenaltyCount:   passenger.PenaltyCount,
		ActiveBookings: views,
	}, nil
}
