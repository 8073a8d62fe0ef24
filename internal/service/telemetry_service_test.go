package service

import (
	"testing"

	"github.com/icarusiftctts/campus-bus-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	published []domain.PositionReport
	err       error
}

func (f *fakePublisher) PublishPosition(report domain.PositionReport) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, report)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func TestPublishPosition_RejectsOutOfRangeCoordinates(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewTelemetryService(pub)

	cases := []domain.PublishPositionRequest{
		{TripID: "trip-1", Lat: 91, Lon: 0},
		{TripID: "trip-1", Lat: -91, Lon: 0},
		{TripID: "trip-1", Lat: 0, Lon: 181},
		{TripID: "trip-1", Lat: 0, Lon: -181},
	}

	for _, req := range cases {
		_, err := svc.PublishPosition(req)
		assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
	}
	assert.Empty(t, pub.published)
}

func TestPublishPosition_AcceptsAndDefaultsOptionalFields(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewTelemetryService(pub)

	resp, err := svc.PublishPosition(domain.PublishPositionRequest{TripID: "trip-1", Lat: 10, Lon: 20})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	require.Len(t, pub.published, 1)
	assert.Equal(t, "trip-1", pub.published[0].TripID)
	assert.Equal(t, 0.0, pub.published[0].Speed)
}

func TestPublishPosition_PassesThroughExplicitFields(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewTelemetryService(pub)

	speed := 42.5
	ts := int64(1700000000)
	_, err := svc.PublishPosition(domain.PublishPositionRequest{TripID: "trip-1", Lat: 10, Lon: 20, Speed: &speed, Ts: &ts})
	require.NoError(t, err)
	require.Len(t, pub.published, 1)
	assert.Equal(t, speed, pub.published[0].Speed)
	assert.Equal(t, ts, pub.published[0].Ts)
}

func TestPublishPosition_PublisherFailureMapsToTelemetryUnavailable(t *testing.T) {
	pub := &fakePublisher{err: assert.AnError}
	svc := NewTelemetryService(pub)

	_, err := svc.PublishPosition(domain.PublishPositionRequest{TripID: "trip-1", Lat: 10, Lon: 20})
	assert.ErrorIs(t, err, domain.ErrTelemetryUnavailable)
}
