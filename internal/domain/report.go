package domain

import "time"

type ReportReason string

const (
	ReasonBehavior        ReportReason = "BEHAVIOR"
	ReasonInvalidBoarding ReportReason = "INVALID_BOARDING_ATTEMPT"
	ReasonOther           ReportReason = "OTHER"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportReviewed ReportStatus = "REVIEWED"
	ReportResolved ReportStatus = "RESOLVED"
)

// MisconductReport is immutable after creation except Status.
type MisconductReport struct {
	ReportID        string
	PassengerID     string
	TripID          string
	OperatorID      string
	Reason          ReportReason
	Comments        string
	EvidenceLocator string
	ReportedAt      time.Time
	Status          ReportStatus
}

type SubmitReportRequest struct {
	PassengerID  string `json:"passengerId" binding:"required"`
	TripID       string `json:"tripId" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
	Comments     string `json:"comments"`
	ImageBase64  string `json:"imageBase64"`
}

type SubmitReportResponse struct {
	ReportID string `json:"reportId"`
}

// GPS telemetry.
type PublishPositionRequest struct {
	TripID string   `json:"tripId" binding:"required"`
	Lat    float64  `json:"lat"`
	Lon    float64  `json:"lon"`
	Speed  *float64 `json:"speed"`
	Ts     *int64   `json:"ts"`
}

type PublishPositionResponse struct {
	Accepted bool  `json:"accepted"`
	Ts       int64 `json:"ts"`
}

// PositionReport is the payload published to bus/location/{tripId}.
type PositionReport struct {
	TripID string  `json:"tripId"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Speed  float64 `json:"speed"`
	Ts     int64   `json:"ts"`
}
