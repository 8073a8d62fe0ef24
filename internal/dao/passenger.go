package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Passenger is the GORM model backing IDS's passenger table. Mirrors the
// teacher's ID/external-UUID split (bookings-api internal/dao/booking.go).
type Passenger struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"-"`
	PassengerID  string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"passengerId"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName  string     `gorm:"type:varchar(255);not null" json:"displayName"`
	Room         string     `gorm:"type:varchar(64)" json:"room,omitempty"`
	Phone        string     `gorm:"type:varchar(32)" json:"phone,omitempty"`
	PenaltyCount int        `gorm:"not null;default:0" json:"penaltyCount"`
	BlockedUntil *time.Time `json:"blockedUntil,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (Passenger) TableName() string { return "passengers" }

func (p *Passenger) BeforeCreate(tx *gorm.DB) error {
	if p.PassengerID == "" {
		p.PassengerID = uuid.New().String()
	}
	return nil
}
