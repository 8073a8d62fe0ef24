package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReportStatusPending  = "PENDING"
	ReportStatusReviewed = "REVIEWED"
	ReportStatusResolved = "RESOLVED"
)

// MisconductReport is the GORM model for operator-filed incident reports.
// Immutable after creation except Status.
type MisconductReport struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ReportID        string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"reportId"`
	PassengerID     string    `gorm:"type:varchar(36);index;not null" json:"passengerId"`
	TripID          string    `gorm:"type:varchar(36);index;not null" json:"tripId"`
	OperatorID      string    `gorm:"type:varchar(36);index;not null" json:"operatorId"`
	Reason          string    `gorm:"type:varchar(32);not null" json:"reason"`
	Comments        string    `gorm:"type:text" json:"comments,omitempty"`
	EvidenceLocator string    `gorm:"type:varchar(512)" json:"evidenceLocator,omitempty"`
	ReportedAt      time.Time `gorm:"autoCreateTime" json:"reportedAt"`
	Status          string    `gorm:"type:varchar(16);not null;default:PENDING" json:"status"`
}

func (MisconductReport) TableName() string { return "misconduct_reports" }

func (r *MisconductReport) BeforeCreate(tx *gorm.DB) error {
	if r.ReportID == "" {
		r.ReportID = uuid.New().String()
	}
	return nil
}
