package service

import (
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/dao"
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/repository"
	"github.com/icarusiftctts/campus-bus-backend/internal/tokens"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OperatorService is OPS: operator authentication, day-of-trip listing, and
// assignment lifecycle. Grounded on users-api's bcrypt+JWT login flow
// (internal/service/auth.go), generalized to the operator realm's own
// password-verifier and session-token kind.
type OperatorService interface {
	Login(req domain.OperatorLoginRequest) (*domain.OperatorLoginResponse, error)
	ListTrips(operatorID string, date time.Time) ([]domain.OperatorTripView, error)
	StartAssignment(operatorID string, req domain.StartAssignmentRequest) (*domain.StartAssignmentResponse, error)
	EndAssignment(operatorID string, req domain.EndAssignmentRequest) error
	ListTripPassengers(tripID string) ([]domain.BookingView, error)
}

type operatorService struct {
	db          *gorm.DB
	tokens      *tokens.Service
	operators   repository.OperatorRepository
	trips       repository.TripRepository
	assignments repository.AssignmentRepository
	bookings    repository.BookingRepository
}

func NewOperatorService(
	db *gorm.DB,
	tokenSvc *tokens.Service,
	operators repository.OperatorRepository,
	trips repository.TripRepository,
	assignments repository.AssignmentRepository,
	bookings repository.BookingRepository,
) OperatorService {
	return &operatorService{
		db:          db,
		tokens:      tokenSvc,
		operators:   operators,
		trips:       trips,
		assignments: assignments,
		bookings:    bookings,
	}
}

// Login implements spec.md §4.6 operatorLogin, reusing the same
// constant-message BAD_CREDENTIALS response for both an unknown employeeId
// and a wrong password to avoid account enumeration.
func (s *operatorService) Login(req domain.OperatorLoginRequest) (*domain.OperatorLoginResponse, error) {
	operator, err := s.operators.FindByEmployeeID(req.EmployeeID)
	if err != nil {
		return nil, domain.ErrBadCredentials
	}
	if operator.Status != dao.OperatorStatusActive {
		return nil, domain.ErrAccountSuspended
	}
	if bcrypt.CompareHashAndPassword([]byte(operator.PasswordVerifier), []byte(req.Password)) != nil {
		return nil, domain.ErrBadCredentials
	}

	now := time.Now()
	operator.LastLoginAt = &now
	if err := s.operators.Update(operator); err != nil {
		return nil, domain.ErrInternal
	}

	token, err := s.tokens.IssueOperatorSession(operator.OperatorID, operator.EmployeeID)
	if err != nil {
		return nil, domain.ErrInternal
	}

	return &domain.OperatorLoginResponse{
		Token:       token,
		OperatorID:  operator.OperatorID,
		DisplayName: operator.DisplayName,
	}, nil
}

// ListTrips implements spec.md §4.6 listOperatorTrips's derived-status rule.
func (s *operatorService) ListTrips(operatorID string, date time.Time) ([]domain.OperatorTripView, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	trips, err := s.trips.FindAvailable("", dayStart, dayEnd)
	if err != nil {
		return nil, domain.ErrInternal
	}

	active, err := s.assignments.FindActiveByOperator(operatorID)
	if err != nil {
		return nil, domain.ErrInternal
	}
	byTrip := make(map[string]dao.TripAssignment, len(active))
	for _, a := range active {
		byTrip[a.TripID] = a
	}

	views := make([]domain.OperatorTripView, 0, len(trips))
	for _, t := range trips {
		status := domain.DerivedUpcoming
		if a, ok := byTrip[t.TripID]; ok && a.Status == dao.AssignmentStatusInProgress {
			status = domain.DerivedInProgress
		} else if (ok && a.Status == dao.AssignmentStatusCompleted) || (!ok && t.DepartureTime.Before(time.Now())) {
			status = domain.DerivedCompleted
		}

		views = append(views, domain.OperatorTripView{
			TripID:        t.TripID,
			Direction:     t.Direction,
			Destination:   t.Destination,
			BusLabel:      t.BusLabel,
			DepartureTime: t.DepartureTime,
			Status:        status,
		})
	}
	return views, nil
}

// StartAssignment enforces invariant A1 under a per-trip row lock, mirroring
// ALLOC/WLM's lock-then-transact shape without needing a COORD token: a
// single IN_PROGRESS check-then-insert inside one transaction is sufficient
// because assignment starts are far less contended than bookings.
func (s *operatorService) StartAssignment(operatorID string, req domain.StartAssignmentRequest) (*domain.StartAssignmentResponse, error) {
	var resp *domain.StartAssignmentResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.assignments.FindInProgressByTrip(tx, req.TripID); err == nil {
			return domain.ErrTripAlreadyActive
		}

		now := time.Now()
		assignment := &dao.TripAssignment{
			TripID:     req.TripID,
			OperatorID: operatorID,
			BusLabel:   req.BusLabel,
			StartedAt:  &now,
			Status:     dao.AssignmentStatusInProgress,
		}
		if err := s.assignments.Create(tx, assignment); err != nil {
			return domain.ErrInternal
		}

		resp = &domain.StartAssignmentResponse{
			AssignmentID: assignment.AssignmentID,
			Status:       string(domain.AssignmentInProgress),
		}
		return nil
	})

	if err != nil {
		return nil, domain.AsAppError(err)
	}
	return resp, nil
}

// EndAssignment closes an operator's IN_PROGRESS assignment for a trip. Not
// named in spec.md's HTTP table but required to close the state machine in
// §4.9 (ASSIGNED → IN_PROGRESS → COMPLETED) — see SPEC_FULL.md §6.
func (s *operatorService) EndAssignment(operatorID string, req domain.EndAssignmentRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		assignment, err := s.assignments.FindInProgressByTrip(tx, req.TripID)
		if err != nil {
			return domain.ErrNotFound
		}
		if assignment.OperatorID != operatorID {
			return domain.ErrForbidden
		}

		now := time.Now()
		assignment.Status = dao.AssignmentStatusCompleted
		assignment.CompletedAt = &now
		if err := s.assignments.Update(tx, assignment); err != nil {
			return domain.ErrInternal
		}
		return nil
	})
}

// ListTripPassengers backs GET /operator/trips/{tripId}/passengers.
func (s *operatorService) ListTripPassengers(tripID string) ([]domain.BookingView, error) {
	confirmed, err := s.bookings.FindByTripAndStatus(tripID, dao.BookingStatusConfirmed)
	if err != nil {
		return nil, domain.ErrInternal
	}
	boarded, err := s.bookings.FindByTripAndStatus(tripID, dao.BookingStatusBoarded)
	if err != nil {
		return nil, domain.ErrInternal
	}

	views := make([]domain.BookingView, 0, len(confirmed)+len(boarded))
	for _, b := range append(confirmed, boarded...) {
		views = append(views, toBookingView(b))
	}
	return views, nil
}

func toBookingView(b dao.Booking) domain.BookingView {
	return domain.BookingView{
		BookingID:        b.BookingID,
		TripID:           b.TripID,
		Status:           b.Status,
		WaitlistPosition: b.WaitlistPosition,
		CreatedAt:        b.CreatedAt,
		BoardedAt:        b.BoardedAt,
	}
}
