package repository

import (
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/dao"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TripRepository defines data access operations for scheduled bus runs.
type TripRepository interface {
	Create(trip *dao.Trip) error
	FindByID(tripID string) (*dao.Trip, error)

	// FindByIDForUpdate loads a trip under SELECT ... FOR UPDATE. Callers
	// must already hold the trip's COORD lock; the row lock guards against
	// a second process in the same transaction window, not against a second
	// process skipping COORD entirely.
	FindByIDForUpdate(tx *gorm.DB, tripID string) (*dao.Trip, error)

	FindAvailable(direction string, from, to time.Time) ([]dao.Trip, error)
	Update(trip *dao.Trip) error
	UpdateStatus(tripID string, status string) error

	// WithTx returns a repository bound to an open transaction, mirroring
	// bookings-api's service-layer pattern of passing *gorm.DB through
	// db.Transaction closures.
	WithTx(tx *gorm.DB) TripRepository
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) WithTx(tx *gorm.DB) TripRepository {
	return &tripRepository{db: tx}
}

func (r *tripRepository) Create(trip *dao.Trip) error {
	return r.db.Create(trip).Error
}

func (r *tripRepository) FindByID(tripID string) (*dao.Trip, error) {
	var t dao.Trip
	if err := r.db.Where("trip_id = ?", tripID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tripRepository) FindByIDForUpdate(tx *gorm.DB, tripID string) (*dao.Trip, error) {
	var t dao.Trip
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("trip_id = ?", tripID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tripRepository) FindAvailable(direction string, from, to time.Time) ([]dao.Trip, error) {
	var trips []dao.Trip
	q := r.db.Where("status = ?", "ACTIVE").
		Where("departure_time BETWEEN ? AND ?", from, to)
	if direction != "" {
		q = q.Where("direction = ?", direction)
	}
	err := q.Order("departure_time ASC").Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Update(trip *dao.Trip) error {
	return r.db.Save(trip).Error
}

func (r *tripRepository) UpdateStatus(tripID string, status string) error {
	return r.db.Model(&dao.Trip{}).
		Where("trip_id = ?", tripID).
		Update("status", status).Error
}
