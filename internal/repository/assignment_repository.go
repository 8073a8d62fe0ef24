package repository

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/dao"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentRepository defines data access operations for operator-to-trip
// assignments.
type AssignmentRepository interface {
	Create(tx *gorm.DB, assignment *dao.TripAssignment) error
	FindByID(assignmentID string) (*dao.TripAssignment, error)

	// FindInProgressByTrip returns a trip's IN_PROGRESS assignment, if any,
	// locked for update — used by StartAssignment's check-then-insert
	// transaction to enforce invariant A1; no COORD lock is taken around it.
	FindInProgressByTrip(tx *gorm.DB, tripID string) (*dao.TripAssignment, error)

	FindActiveByOperator(operatorID string) ([]dao.TripAssignment, error)
	Update(tx *gorm.DB, assignment *dao.TripAssignment) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(tx *gorm.DB, assignment *dao.TripAssignment) error {
	return tx.Create(assignment).Error
}

func (r *assignmentRepository) FindByID(assignmentID string) (*dao.TripAssignment, error) {
	var a dao.TripAssignment
	if err := r.db.Where("assignment_id = ?", assignmentID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepository) FindInProgressByTrip(tx *gorm.DB, tripID string) (*dao.TripAssignment, error) {
	var a dao.TripAssignment
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("trip_id = ? AND status = ?", tripID, dao.AssignmentStatusInProgress).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepository) FindActiveByOperator(operatorID string) ([]dao.TripAssignment, error) {
	var assignments []dao.TripAssignment
	err := r.db.Where("operator_id = ? AND status IN ?", operatorID,
		[]string{dao.AssignmentStatusAssigned, dao.AssignmentStatusInProgress}).
		Order("assigned_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) Update(tx *gorm.DB, assignment *dao.TripAssignment) error {
	return tx.Save(assignment).Error
}
