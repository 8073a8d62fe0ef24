package service

import (
	"context"
	"encoding/base64"

	"github.com/icarusiftctts/campus-bus-backend/internal/dao"
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/repository"
	"github.com/icarusiftctts/campus-bus-backend/internal/storage"

	"github.com/rs/zerolog"
)

// ReportService is EVID: takes a misconduct report, optionally decodes and
// stores an inline-encoded photo, and persists the report regardless of
// whether the upload succeeded (spec.md §4.8 step 3).
type ReportService interface {
	SubmitReport(ctx context.Context, operatorID string, req domain.SubmitReportRequest) (*domain.SubmitReportResponse, error)
}

type reportService struct {
	reports repository.ReportRepository
	blobs   storage.BlobStore
	logger  zerolog.Logger
}

func NewReportService(reports repository.ReportRepository, blobs storage.BlobStore, logger zerolog.Logger) ReportService {
	return &reportService{reports: reports, blobs: blobs, logger: logger}
}

var validReasons = map[string]bool{
	string(domain.ReasonBehavior):        true,
	string(domain.ReasonInvalidBoarding): true,
	string(domain.ReasonOther):           true,
}

func (s *reportService) SubmitReport(ctx context.Context, operatorID string, req domain.SubmitReportRequest) (*domain.SubmitReportResponse, error) {
	if !validReasons[req.Reason] {
		return nil, domain.ErrMalformedRequest
	}
	if req.Reason == string(domain.ReasonOther) && req.Comments == "" {
		return nil, domain.ErrCommentsRequired
	}

	var locator string
	if req.ImageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to decode evidence image, proceeding without it")
		} else {
			loc, err := s.blobs.PutEvidence(ctx, req.PassengerID, data, "image/jpeg")
			if err != nil {
				s.logger.Error().Err(err).Str("passenger_id", req.PassengerID).Msg("failed to upload evidence photo, proceeding without it")
			} else {
				locator = loc
			}
		}
	}

	report := &dao.MisconductReport{
		PassengerID:     req.PassengerID,
		TripID:          req.TripID,
		OperatorID:      operatorID,
		Reason:          req.Reason,
		Comments:        req.Comments,
		EvidenceLocator: locator,
		Status:          dao.ReportStatusPending,
	}

	if err := s.reports.Create(report); err != nil {
		return nil, domain.ErrInternal
	}

	return &domain.SubmitReportResponse{ReportID: report.ReportID}, nil
}
