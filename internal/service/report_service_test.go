package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/icarusiftctts/campus-bus-backend/internal/dao"
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepository struct {
	created []*dao.MisconductReport
	err     error
}

func (f *fakeReportRepository) Create(report *dao.MisconductReport) error {
	if f.err != nil {
		return f.err
	}
	report.ReportID = "report-1"
	f.created = append(f.created, report)
	return nil
}

func (f *fakeReportRepository) FindByID(reportID string) (*dao.MisconductReport, error) {
	return nil, assert.AnError
}

func (f *fakeReportRepository) FindByPassenger(passengerID string) ([]dao.MisconductReport, error) {
	return nil, nil
}

func (f *fakeReportRepository) UpdateStatus(reportID string, status string) error { return nil }

type fakeBlobStore struct {
	locator string
	err     error
	called  bool
}

func (f *fakeBlobStore) PutEvidence(ctx context.Context, passengerID string, data []byte, contentType string) (string, error) {
	f.called = true
	if f.err != nil {
		return "", f.err
	}
	return f.locator, nil
}

func TestSubmitReport_RejectsUnknownReason(t *testing.T) {
	svc := NewReportService(&fakeReportRepository{}, &fakeBlobStore{}, zerolog.Nop())

	_, err := svc.SubmitReport(context.Background(), "operator-1", domain.SubmitReportRequest{
		PassengerID: "passenger-1",
		TripID:      "trip-1",
		Reason:      "NONSENSE",
	})
	assert.ErrorIs(t, err, domain.ErrMalformedRequest)
}

func TestSubmitReport_OtherReasonRequiresComments(t *testing.T) {
	svc := NewReportService(&fakeReportRepository{}, &fakeBlobStore{}, zerolog.Nop())

	_, err := svc.SubmitReport(context.Background(), "operator-1", domain.SubmitReportRequest{
		PassengerID: "passenger-1",
		TripID:      "trip-1",
		Reason:      string(domain.ReasonOther),
	})
	assert.ErrorIs(t, err, domain.ErrCommentsRequired)
}

func TestSubmitReport_UploadsEvidenceWhenPresent(t *testing.T) {
	repo := &fakeReportRepository{}
	blobs := &fakeBlobStore{locator: "s3://bucket/misconduct/passenger-1/abc.jpg"}
	svc := NewReportService(repo, blobs, zerolog.Nop())

	resp, err := svc.SubmitReport(context.Background(), "operator-1", domain.SubmitReportRequest{
		PassengerID: "passenger-1",
		TripID:      "trip-1",
		Reason:      string(domain.ReasonBehavior),
		ImageBase64: base64.StdEncoding.EncodeToString([]byte("fake-image-bytes")),
	})
	require.NoError(t, err)
	assert.Equal(t, "report-1", resp.ReportID)
	require.Len(t, repo.created, 1)
	assert.True(t, blobs.called)
	assert.Equal(t, blobs.locator, repo.created[0].EvidenceLocator)
}

func TestSubmitReport_SucceedsWithoutEvidence(t *testing.T) {
	repo := &fakeReportRepository{}
	blobs := &fakeBlobStore{}
	svc := NewReportService(repo, blobs, zerolog.Nop())

	resp, err := svc.SubmitReport(context.Background(), "operator-1", domain.SubmitReportRequest{
		PassengerID: "passenger-1",
		TripID:      "trip-1",
		Reason:      string(domain.ReasonBehavior),
	})
	require.NoError(t, err)
	assert.Equal(t, "report-1", resp.ReportID)
	assert.False(t, blobs.called)
}

func TestSubmitReport_EvidenceUploadFailureStillCreatesReport(t *testing.T) {
	repo := &fakeReportRepository{}
	blobs := &fakeBlobStore{err: assert.AnError}
	svc := NewReportService(repo, blobs, zerolog.Nop())

	resp, err := svc.SubmitReport(context.Background(), "operator-1", domain.SubmitReportRequest{
		PassengerID: "passenger-1",
		TripID:      "trip-1",
		Reason:      string(domain.ReasonBehavior),
		ImageBase64: base64.StdEncoding.EncodeToString([]byte("fake-image-bytes")),
	})
	require.NoError(t, err)
	assert.Equal(t, "report-1", resp.ReportID)
	assert.Empty(t, repo.created[0].EvidenceLocator)
}
