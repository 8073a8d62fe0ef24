package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AssignmentStatusAssigned   = "ASSIGNED"
	AssignmentStatusInProgress = "IN_PROGRESS"
	AssignmentStatusCompleted  = "COMPLETED"
	AssignmentStatusCancelled  = "CANCELLED"
)

// TripAssignment is the GORM model binding an operator to a trip run.
// Invariant A1 (at most one IN_PROGRESS assignment per trip) is enforced by
// idx_trip_status_assign together with FindInProgressByTrip's
// SELECT ... FOR UPDATE gap-lock ahead of the insert (see
// internal/repository/assignment_repository.go and DESIGN.md); there is no
// partial-unique index, since MySQL has no native filtered unique index.
type TripAssignment struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"-"`
	AssignmentID string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"assignmentId"`
	TripID       string     `gorm:"type:varchar(36);index:idx_trip_status_assign,priority:1;not null" json:"tripId"`
	OperatorID   string     `gorm:"type:varchar(36);index:idx_operator_date;not null" json:"operatorId"`
	BusLabel     string     `gorm:"type:varchar(64)" json:"busLabel,omitempty"`
	AssignedAt   time.Time  `gorm:"autoCreateTime" json:"assignedAt"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	Status       string     `gorm:"type:varchar(16);index:idx_trip_status_assign,priority:2;not null" json:"status"`
}

func (TripAssignment) TableName() string { return "trip_assignments" }

func (a *TripAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.AssignmentID == "" {
		a.AssignmentID = uuid.New().String()
	}
	return nil
}
