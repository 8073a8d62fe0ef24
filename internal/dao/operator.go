package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OperatorStatusActive    = "ACTIVE"
	OperatorStatusInactive  = "INACTIVE"
	OperatorStatusSuspended = "SUSPENDED"
)

// Operator is the GORM model for driver/conductor accounts, created
// administratively (no self-registration endpoint — see DESIGN.md).
type Operator struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"-"`
	OperatorID       string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"operatorId"`
	EmployeeID       string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"employeeId"`
	DisplayName      string     `gorm:"type:varchar(255);not null" json:"displayName"`
	PasswordVerifier string     `gorm:"type:varchar(255);not null" json:"-"`
	Phone            string     `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Status           string     `gorm:"type:varchar(16);index;not null;default:ACTIVE" json:"status"`
	LastLoginAt      *time.Time `json:"lastLoginAt,omitempty"`
}

func (Operator) TableName() string { return "operators" }

func (o *Operator) BeforeCreate(tx *gorm.DB) error {
	if o.OperatorID == "" {
		o.OperatorID = uuid.New().String()
	}
	return nil
}
