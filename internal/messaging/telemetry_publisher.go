// Package messaging implements TEL: at-least-once GPS telemetry broadcast
// over a RabbitMQ topic exchange, grounded on bookings-api's
// internal/publisher/reservation_publisher.go (same exchange-declare +
// persistent-delivery pattern, generalized from reservation events to
// position reports).
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
)

const (
	ExchangeName = "telemetry.events"
	ExchangeType = "topic"

	// RoutingKeyPrefix + tripID forms "bus.location.{tripId}" (spec.md §4.6).
	RoutingKeyPrefix = "bus.location."
)

// Publisher is the TEL contract consumed by the service layer.
type Publisher interface {
	PublishPosition(report domain.PositionReport) error
	Close() error
}

type rabbitPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  zerolog.Logger
}

// NewRabbitPublisher connects to the broker and declares the telemetry
// exchange, mirroring the teacher's connect-channel-declare sequence.
func NewRabbitPublisher(rabbitMQURL string, logger zerolog.Logger) (Publisher, error) {
	if rabbitMQURL == "" {
		return nil, fmt.Errorf("RabbitMQ URL is required but not provided in configuration")
	}

	logger.Info().Str("url", sanitizeURL(rabbitMQURL)).Msg("connecting to RabbitMQ for telemetry publishing")

	conn, err := amqp.Dial(rabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		ExchangeName,
		ExchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", ExchangeName, err)
	}

	logger.Info().Str("exchange", ExchangeName).Msg("telemetry exchange declared")

	return &rabbitPublisher{conn: conn, channel: channel, logger: logger}, nil
}

// PublishPosition broadcasts a position report on "bus.location.{tripId}".
// Delivery is at-least-once (spec.md §4.6): a failed publish returns an error
// the caller maps to TELEMETRY_UNAVAILABLE, but a successful publish makes no
// ordering guarantee across positions for the same trip.
func (p *rabbitPublisher) PublishPosition(report domain.PositionReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal position report: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	routingKey := RoutingKeyPrefix + report.TripID

	err = p.channel.PublishWithContext(
		ctx,
		ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Unix(report.Ts, 0),
		},
	)
	if err != nil {
		p.logger.Error().Err(err).Str("trip_id", report.TripID).Msg("failed to publish position report")
		return fmt.Errorf("failed to publish position: %w", err)
	}

	return nil
}

func (p *rabbitPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Error().Err(err).Msg("error closing RabbitMQ channel")
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("failed to close RabbitMQ connection: %w", err)
		}
	}
	return nil
}

func sanitizeURL(url string) string {
	if idx := strings.Index(url, "://"); idx != -1 {
		rest := url[idx+3:]
		if idx2 := strings.Index(rest, ":"); idx2 != -1 {
			if idx3 := strings.Index(rest[idx2:], "@"); idx3 != -1 {
				return url[:idx+3+idx2+1] + "***" + rest[idx2+idx3:]
			}
		}
	}
	return url
}
