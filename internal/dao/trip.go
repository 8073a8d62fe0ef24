package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TripStatusActive    = "ACTIVE"
	TripStatusCancelled = "CANCELLED"
	TripStatusCompleted = "COMPLETED"
)

const (
	DirectionAToB = "A_TO_B"
	DirectionBToA = "B_TO_A"
)

// Trip is the GORM model for a scheduled bus run. Immutable after first
// booking except Status — enforced in the service layer, not here.
type Trip struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	TripID          string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"tripId"`
	Direction       string    `gorm:"type:varchar(16);index;not null" json:"direction"`
	Destination     string    `gorm:"type:varchar(255)" json:"destination,omitempty"`
	BusLabel        string    `gorm:"type:varchar(64)" json:"busLabel,omitempty"`
	Date            time.Time `gorm:"type:date;not null" json:"date"`
	DepartureTime   time.Time `gorm:"not null" json:"departureTime"`
	Capacity        int       `gorm:"not null;default:35" json:"capacity"`
	FacultyReserved int       `gorm:"not null;default:5" json:"facultyReserved"`
	Status          string    `gorm:"type:varchar(16);index;not null;default:ACTIVE" json:"status"`
	DayClass        string    `gorm:"type:varchar(16);not null" json:"dayClass"`
}

func (Trip) TableName() string { return "trips" }

func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.TripID == "" {
		t.TripID = uuid.New().String()
	}
	return nil
}
