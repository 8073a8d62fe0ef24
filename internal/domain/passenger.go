package domain

import "time"

// Passenger is the federated-identity-backed rider record. Created on first
// successful federated login; penaltyCount/blockedUntil are owned by the
// (out-of-scope) penalty subsystem but honoured here.
type Passenger struct {
	PassengerID  string
	Email        string
	DisplayName  string
	Room         string
	Phone        string
	PenaltyCount int
	BlockedUntil *time.Time
	CreatedAt    time.Time
}

// Blocked reports whether the passenger is currently barred from booking.
func (p *Passenger) Blocked(now time.Time) bool {
	return p.PenaltyCount >= 3 && p.BlockedUntil != nil && p.BlockedUntil.After(now)
}

// ProfileComplete reports whether the optional profile fields are filled in.
func (p *Passenger) ProfileComplete() bool {
	return p.Room != "" && p.Phone != ""
}

type FederatedLoginRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName" binding:"required"`
}

type FederatedLoginResponse struct {
	PassengerID     string `json:"passengerId"`
	Token           string `json:"token"`
	IsNewUser       bool   `json:"isNewUser"`
	ProfileComplete bool   `json:"profileComplete"`
}

type CompleteProfileRequest struct {
	PassengerID string `json:"passengerId" binding:"required"`
	Room        string `json:"room"`
	Phone       string `json:"phone"`
}

type ProfileResponse struct {
	PassengerID     string          `json:"passengerId"`
	Email           string          `json:"email"`
	DisplayName     string          `json:"displayName"`
	Room            string          `json:"room"`
	Phone           string          `json:"phone"`
	PenaltyCount    int             `json:"penaltyCount"`
	ActiveBookings  []*BookingView  `json:"activeBookings"`
}
