package domain

import "time"

type OperatorStatus string

const (
	OperatorActive    OperatorStatus = "ACTIVE"
	OperatorInactive  OperatorStatus = "INACTIVE"
	OperatorSuspended OperatorStatus = "SUSPENDED"
)

// Operator is a driver/conductor account, created administratively.
type Operator struct {
	OperatorID       string
	EmployeeID       string
	DisplayName      string
	PasswordVerifier string
	Phone            string
	Status           OperatorStatus
	LastLoginAt      *time.Time
}

type OperatorLoginRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type OperatorLoginResponse struct {
	Token       string `json:"token"`
	OperatorID  string `json:"operatorId"`
	DisplayName string `json:"displayName"`
}

// AssignmentStatus is the lifecycle of a TripAssignment.
type AssignmentStatus string

const (
	AssignmentAssigned   AssignmentStatus = "ASSIGNED"
	AssignmentInProgress AssignmentStatus = "IN_PROGRESS"
	AssignmentCompleted  AssignmentStatus = "COMPLETED"
	AssignmentCancelled  AssignmentStatus = "CANCELLED"
)

// TripAssignment binds an operator to a trip for a single run.
type TripAssignment struct {
	AssignmentID string
	TripID       string
	OperatorID   string
	BusLabel     string
	AssignedAt   time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	Status       AssignmentStatus
}

// DerivedTripStatus is the operator-facing status computed by listOperatorTrips.
type DerivedTripStatus string

const (
	DerivedInProgress DerivedTripStatus = "IN_PROGRESS"
	DerivedCompleted  DerivedTripStatus = "COMPLETED"
	DerivedUpcoming   DerivedTripStatus = "UPCOMING"
)

type OperatorTripView struct {
	TripID        string            `json:"tripId"`
	Direction     string            `json:"direction"`
	Destination   string            `json:"destination,omitempty"`
	BusLabel      string            `json:"busLabel,omitempty"`
	DepartureTime time.Time         `json:"departureTime"`
	Status        DerivedTripStatus `json:"status"`
}

type StartAssignmentRequest struct {
	TripID   string `json:"tripId" binding:"required"`
	BusLabel string `json:"busLabel" binding:"required"`
}

type StartAssignmentResponse struct {
	AssignmentID string `json:"assignmentId"`
	Status       string `json:"status"`
}

type EndAssignmentRequest struct {
	TripID string `json:"tripId" binding:"required"`
}
