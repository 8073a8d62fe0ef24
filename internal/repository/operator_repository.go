package repository

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/dao"

	"gorm.io/gorm"
)

// OperatorRepository defines data access operations for operator accounts.
type OperatorRepository interface {
	Create(operator *dao.Operator) error
	FindByID(operatorID string) (*dao.Operator, error)
	FindByEmployeeID(employeeID string) (*dao.Operator, error)
	Update(operator *dao.Operator) error
}

type operatorRepository struct {
	db *gorm.DB
}

func NewOperatorRepository(db *gorm.DB) OperatorRepository {
	return &operatorRepository{db: db}
}

func (r *operatorRepository) Create(operator *dao.Operator) error {
	return r.db.Create(operator).Error
}

func (r *operatorRepository) FindByID(operatorID string) (*dao.Operator, error) {
	var o dao.Operator
	if err := r.db.Where("operator_id = ?", operatorID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *operatorRepository) FindByEmployeeID(employeeID string) (*dao.Operator, error) {
	var o dao.Operator
	if err := r.db.Where("employee_id = ?", employeeID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *operatorRepository) Update(operator *dao.Operator) error {
	return r.db.Save(operator).Error
}
