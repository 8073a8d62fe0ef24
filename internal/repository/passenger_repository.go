package repository

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/dao"

	"gorm.io/gorm"
)

// PassengerRepository defines data access operations for passenger accounts.
type PassengerRepository interface {
	Create(passenger *dao.Passenger) error
	FindByID(passengerID string) (*dao.Passenger, error)
	FindByEmail(email string) (*dao.Passenger, error)
	Update(passenger *dao.Passenger) error
}

type passengerRepository struct {
	db *gorm.DB
}

func NewPassengerRepository(db *gorm.DB) PassengerRepository {
	return &passengerRepository{db: db}
}

func (r *passengerRepository) Create(passenger *dao.Passenger) error {
	return r.db.Create(passenger).Error
}

func (r *passengerRepository) FindByID(passengerID string) (*dao.Passenger, error) {
	var p dao.Passenger
	if err := r.db.Where("passenger_id = ?", passengerID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *passengerRepository) FindByEmail(email string) (*dao.Passenger, error) {
	var p dao.Passenger
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *passengerRepository) Update(passenger *dao.Passenger) error {
	return r.db.Save(passenger).Error
}
