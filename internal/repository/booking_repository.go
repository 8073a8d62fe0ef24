package repository

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/dao"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository defines data access operations for passenger bookings.
type BookingRepository interface {
	Create(booking *dao.Booking) error
	FindByID(bookingID string) (*dao.Booking, error)
	FindByIDForUpdate(tx *gorm.DB, bookingID string) (*dao.Booking, error)

	// FindActiveByPassengerAndTrip returns the passenger's non-terminal
	// booking for a trip, if any (invariant U1).
	FindActiveByPassengerAndTrip(tx *gorm.DB, passengerID, tripID string) (*dao.Booking, error)

	// CountConfirmedByTrip returns the number of occupied seats for a trip —
	// CONFIRMED plus BOARDED, since boarding has no time gate relative to
	// departure and a passenger can be BOARDED before new bookings are taken —
	// used to compute remaining seats under the row lock (invariant U3).
	CountConfirmedByTrip(tx *gorm.DB, tripID string) (int64, error)

	// FindWaitlistHead returns the waitlisted booking with the lowest
	// waitlist_position for a trip, for FIFO promotion.
	FindWaitlistHead(tx *gorm.DB, tripID string) (*dao.Booking, error)

	FindActiveByPassenger(passengerID string) ([]dao.Booking, error)
	FindByTripAndStatus(tripID string, status string) ([]dao.Booking, error)
	Update(tx *gorm.DB, booking *dao.Booking) error
	WithTx(tx *gorm.DB) BookingRepository
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) WithTx(tx *gorm.DB) BookingRepository {
	return &bookingRepository{db: tx}
}

func (r *bookingRepository) Create(booking *dao.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepository) FindByID(bookingID string) (*dao.Booking, error) {
	var b dao.Booking
	if err := r.db.Where("booking_id = ?", bookingID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) FindByIDForUpdate(tx *gorm.DB, bookingID string) (*dao.Booking, error) {
	var b dao.Booking
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("booking_id = ?", bookingID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) FindActiveByPassengerAndTrip(tx *gorm.DB, passengerID, tripID string) (*dao.Booking, error) {
	var b dao.Booking
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("passenger_id = ? AND trip_id = ? AND status IN ?", passengerID, tripID,
			[]string{dao.BookingStatusConfirmed, dao.BookingStatusWaitlist, dao.BookingStatusBoarded}).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) CountConfirmedByTrip(tx *gorm.DB, tripID string) (int64, error) {
	var count int64
	err := tx.Model(&dao.Booking{}).
		Where("trip_id = ? AND status IN ?", tripID,
			[]string{dao.BookingStatusConfirmed, dao.BookingStatusBoarded}).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) FindWaitlistHead(tx *gorm.DB, tripID string) (*dao.Booking, error) {
	var b dao.Booking
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("trip_id = ? AND status = ?", tripID, dao.BookingStatusWaitlist).
		Order("waitlist_position ASC").
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) FindActiveByPassenger(passengerID string) ([]dao.Booking, error) {
	var bookings []dao.Booking
	err := r.db.Where("passenger_id = ? AND status IN ?", passengerID,
		[]string{dao.BookingStatusConfirmed, dao.BookingStatusWaitlist, dao.BookingStatusBoarded}).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByTripAndStatus(tripID string, status string) ([]dao.Booking, error) {
	var bookings []dao.Booking
	err := r.db.Where("trip_id = ? AND status = ?", tripID, status).
		Order("waitlist_position ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) Update(tx *gorm.DB, booking *dao.Booking) error {
	return tx.Save(booking).Error
}
