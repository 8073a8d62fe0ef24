package service

import (
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/messaging"
)

// TelemetryService is TEL: validates and forwards operator GPS reports.
type TelemetryService interface {
	PublishPosition(req domain.PublishPositionRequest) (*domain.PublishPositionResponse, error)
}

type telemetryService struct {
	publisher messaging.Publisher
}

func NewTelemetryService(publisher messaging.Publisher) TelemetryService {
	return &telemetryService{publisher: publisher}
}

// PublishPosition implements spec.md §4.7: validate coordinates, default
// optional fields, publish with at-least-once delivery. No durable record is
// kept on this side of the topic.
func (s *telemetryService) PublishPosition(req domain.PublishPositionRequest) (*domain.PublishPositionResponse, error) {
	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		return nil, domain.ErrInvalidCoordinate
	}

	ts := time.Now().Unix()
	if req.Ts != nil {
		ts = *req.Ts
	}
	speed := 0.0
	if req.Speed != nil {
		speed = *req.Speed
	}

	report := domain.PositionReport{
		TripID: req.TripID,
		Lat:    req.Lat,
		Lon:    req.Lon,
		Speed:  speed,
		Ts:     ts,
	}

	if err := s.publisher.PublishPosition(report); err != nil {
		return nil, domain.ErrTelemetryUnavailable
	}

	return &domain.PublishPositionResponse{Accepted: true, Ts: ts}, nil
}
