package repository

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/dao"

	"gorm.io/gorm"
)

// ReportRepository defines data access operations for misconduct reports.
type ReportRepository interface {
	Create(report *dao.MisconductReport) error
	FindByID(reportID string) (*dao.MisconductReport, error)
	FindByPassenger(passengerID string) ([]dao.MisconductReport, error)
	UpdateStatus(reportID string, status string) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *dao.MisconductReport) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) FindByID(reportID string) (*dao.MisconductReport, error) {
	var m dao.MisconductReport
	if err := r.db.Where("report_id = ?", reportID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *reportRepository) FindByPassenger(passengerID string) ([]dao.MisconductReport, error) {
	var reports []dao.MisconductReport
	err := r.db.Where("passenger_id = ?", passengerID).
		Order("reported_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *reportRepository) UpdateStatus(reportID string, status string) error {
	return r.db.Model(&dao.MisconductReport{}).
		Where("report_id = ?", reportID).
		Update("status", status).Error
}
