package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking status constants — mirrors bookings-api's status constant block
// (internal/dao/booking.go), generalized to the four states spec.md names.
const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusWaitlist  = "WAITLIST"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusBoarded   = "BOARDED"
)

// Booking is the GORM model for a passenger's claim on a trip's seat.
//
// Indexes mirror spec.md §4.2: (tripId,status), (tripId,status,waitlistPosition),
// (passengerId,tripId). The partial uniqueness spec.md's U1 describes
// ("at most one non-terminal booking per (passenger,trip)") is enforced in
// the service layer under the per-trip COORD lock plus a `SELECT ... FOR
// UPDATE` re-check, not as a DB constraint — MySQL cannot express a unique
// index filtered by status without a generated column (see DESIGN.md).
type Booking struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"-"`
	BookingID        string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"bookingId"`
	PassengerID      string     `gorm:"type:varchar(36);index:idx_passenger_trip,priority:1;not null" json:"passengerId"`
	TripID           string     `gorm:"type:varchar(36);index:idx_trip_status,priority:1;index:idx_trip_status_pos,priority:1;index:idx_passenger_trip,priority:2;not null" json:"tripId"`
	Status           string     `gorm:"type:varchar(16);index:idx_trip_status,priority:2;index:idx_trip_status_pos,priority:2;not null" json:"status"`
	BoardingToken    string     `gorm:"type:varchar(512)" json:"-"`
	CreatedAt        time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`
	BoardedAt        *time.Time `json:"boardedAt,omitempty"`
	WaitlistPosition *int       `gorm:"index:idx_trip_status_pos,priority:3" json:"waitlistPosition,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == "" {
		b.BookingID = uuid.New().String()
	}
	return nil
}
