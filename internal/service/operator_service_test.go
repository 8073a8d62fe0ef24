package service

import (
	"testing"
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/dao"
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOperatorRepository struct {
	byEmployeeID map[string]*dao.Operator
	updated      *dao.Operator
}

func (f *fakeOperatorRepository) Create(operator *dao.Operator) error { return nil }

func (f *fakeOperatorRepository) FindByID(operatorID string) (*dao.Operator, error) {
	for _, o := range f.byEmployeeID {
		if o.OperatorID == operatorID {
			return o, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeOperatorRepository) FindByEmployeeID(employeeID string) (*dao.Operator, error) {
	o, ok := f.byEmployeeID[employeeID]
	if !ok {
		return nil, assert.AnError
	}
	return o, nil
}

func (f *fakeOperatorRepository) Update(operator *dao.Operator) error {
	f.updated = operator
	return nil
}

type fakeAssignmentRepository struct {
	active []dao.TripAssignment
}

func (f *fakeAssignmentRepository) Create(tx *gorm.DB, assignment *dao.TripAssignment) error {
	return nil
}
func (f *fakeAssignmentRepository) FindByID(assignmentID string) (*dao.TripAssignment, error) {
	return nil, assert.AnError
}
func (f *fakeAssignmentRepository) FindInProgressByTrip(tx *gorm.DB, tripID string) (*dao.TripAssignment, error) {
	return nil, assert.AnError
}
func (f *fakeAssignmentRepository) FindActiveByOperator(operatorID string) ([]dao.TripAssignment, error) {
	return f.active, nil
}
func (f *fakeAssignmentRepository) Update(tx *gorm.DB, assignment *dao.TripAssignment) error {
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestOperatorLogin_UnknownEmployee(t *testing.T) {
	operators := &fakeOperatorRepository{byEmployeeID: map[string]*dao.Operator{}}
	svc := NewOperatorService(nil, testTokenSvc(), operators, &fakeTripRepository{}, &fakeAssignmentRepository{}, &fakeBookingRepository{})

	_, err := svc.Login(domain.OperatorLoginRequest{EmployeeID: "EMP-999", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestOperatorLogin_WrongPassword(t *testing.T) {
	operators := &fakeOperatorRepository{byEmployeeID: map[string]*dao.Operator{
		"EMP-001": {OperatorID: "op-1", EmployeeID: "EMP-001", Status: dao.OperatorStatusActive, PasswordVerifier: mustHash(t, "correct-password")},
	}}
	svc := NewOperatorService(nil, testTokenSvc(), operators, &fakeTripRepository{}, &fakeAssignmentRepository{}, &fakeBookingRepository{})

	_, err := svc.Login(domain.OperatorLoginRequest{EmployeeID: "EMP-001", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestOperatorLogin_Suspended(t *testing.T) {
	operators := &fakeOperatorRepository{byEmployeeID: map[string]*dao.Operator{
		"EMP-001": {OperatorID: "op-1", EmployeeID: "EMP-001", Status: dao.OperatorStatusSuspended, PasswordVerifier: mustHash(t, "correct-password")},
	}}
	svc := NewOperatorService(nil, testTokenSvc(), operators, &fakeTripRepository{}, &fakeAssignmentRepository{}, &fakeBookingRepository{})

	_, err := svc.Login(domain.OperatorLoginRequest{EmployeeID: "EMP-001", Password: "correct-password"})
	assert.ErrorIs(t, err, domain.ErrAccountSuspended)
}

func TestOperatorLogin_Success(t *testing.T) {
	operators := &fakeOperatorRepository{byEmployeeID: map[string]*dao.Operator{
		"EMP-001": {OperatorID: "op-1", EmployeeID: "EMP-001", DisplayName: "Jane Driver", Status: dao.OperatorStatusActive, PasswordVerifier: mustHash(t, "correct-password")},
	}}
	svc := NewOperatorService(nil, testTokenSvc(), operators, &fakeTripRepository{}, &fakeAssignmentRepository{}, &fakeBookingRepository{})

	resp, err := svc.Login(domain.OperatorLoginRequest{EmployeeID: "EMP-001", Password: "correct-password"})
	require.NoError(t, err)
	assert.Equal(t, "op-1", resp.OperatorID)
	assert.Equal(t, "Jane Driver", resp.DisplayName)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, operators.updated)
	assert.NotNil(t, operators.updated.LastLoginAt)
}

func TestListTrips_DerivesStatusFromAssignment(t *testing.T) {
	now := time.Now()
	trips := &fakeTripRepository{
		available: []dao.Trip{
			{TripID: "trip-in-progress", DepartureTime: now.Add(time.Hour)},
			{TripID: "trip-completed-by-assignment", DepartureTime: now.Add(time.Hour)},
			{TripID: "trip-upcoming", DepartureTime: now.Add(2 * time.Hour)},
			{TripID: "trip-completed-by-time", DepartureTime: now.Add(-time.Hour)},
		},
	}
	assignments := &fakeAssignmentRepository{active: []dao.TripAssignment{
		{TripID: "trip-in-progress", Status: dao.AssignmentStatusInProgress},
		{TripID: "trip-completed-by-assignment", Status: dao.AssignmentStatusCompleted},
	}}

	svc := NewOperatorService(nil, testTokenSvc(), &fakeOperatorRepository{byEmployeeID: map[string]*dao.Operator{}}, trips, assignments, &fakeBookingRepository{})

	views, err := svc.ListTrips("operator-1", now)
	require.NoError(t, err)

	byID := map[string]domain.OperatorTripView{}
	for _, v := range views {
		byID[v.TripID] = v
	}
	assert.Equal(t, domain.DerivedInProgress, byID["trip-in-progress"].Status)
	assert.Equal(t, domain.DerivedCompleted, byID["trip-completed-by-assignment"].Status)
	assert.Equal(t, domain.DerivedUpcoming, byID["trip-upcoming"].Status)
	assert.Equal(t, domain.DerivedCompleted, byID["trip-completed-by-time"].Status)
}
