// Package kafka subscribes to the broadcast drone-position topic and feeds
// decoded events into the session controller. The topic carries every
// customer's drones; filtering against the current session happens in the
// domain, not here.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/ports"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
)

// reconnectDelay is the fixed wait between subscription attempts. The
// consumer retries forever: no backoff growth, no attempt cutoff.
const reconnectDelay = 3 * time.Second

// positionMessageDTO is the wire shape of one drone-position broadcast.
type positionMessageDTO struct {
	OrderNumber     string  `json:"orderNumber"`
	DroneID         string  `json:"droneId"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	Status          string  `json:"status"`
	PercentComplete float64 `json:"percentComplete"`
}

// PositionConsumer consumes the single-partition position topic and
// dispatches each event synchronously to the handler, preserving broker
// delivery order.
type PositionConsumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler ports.PositionHandler
	log     *slog.Logger
}

// NewPositionConsumer creates a consumer group subscribed to topic.
func NewPositionConsumer(
	brokers []string,
	groupID string,
	topic string,
	handler ports.PositionHandler,
	logger *slog.Logger,
) (*PositionConsumer, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if handler == nil {
		return nil, errs.NewValueIsRequiredError("handler")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &PositionConsumer{
		group:   group,
		topic:   topic,
		handler: handler,
		log:     logger.With("component", "position-consumer", "topic", topic),
	}, nil
}

// Run consumes until ctx is cancelled, resubscribing after every failure
// with the fixed reconnect delay. Blocks; call in its own goroutine.
func (c *PositionConsumer) Run(ctx context.Context) {
	claims := &claimHandler{
		dispatch: func(msg *sarama.ConsumerMessage) {
			c.handleMessage(ctx, msg)
		},
	}

	for {
		if ctx.Err() != nil {
			return
		}

		if err := c.group.Consume(ctx, []string{c.topic}, claims); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			c.log.Warn("position subscription lost, reconnecting", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

// Close shuts the consumer group down.
func (c *PositionConsumer) Close() error {
	return c.group.Close()
}

// handleMessage decodes one broadcast and hands it to the session
// controller. Malformed payloads are logged and skipped so a bad message
// never stalls the stream.
func (c *PositionConsumer) handleMessage(ctx context.Context, msg *sarama.ConsumerMessage) {
	var dto positionMessageDTO
	if err := json.Unmarshal(msg.Value, &dto); err != nil {
		c.log.Warn("skipping undecodable position message",
			"offset", msg.Offset, "error", err)
		return
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		c.log.Warn("skipping position message with invalid coordinates",
			"offset", msg.Offset, "error", err)
		return
	}

	event, err := session.NewPositionEvent(dto.OrderNumber, dto.DroneID,
		point, dto.Status, dto.PercentComplete)
	if err != nil {
		c.log.Warn("skipping malformed position event",
			"offset", msg.Offset, "error", err)
		return
	}

	if err := c.handler.HandlePosition(ctx, event); err != nil {
		c.log.Error("position handler failed",
			"order", dto.OrderNumber, "offset", msg.Offset, "error", err)
	}
}

// claimHandler adapts the dispatch callback to sarama's consumer group
// interface. Messages are processed one at a time in claim order.
type claimHandler struct {
	dispatch func(msg *sarama.ConsumerMessage)
}

func (*claimHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (*claimHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *claimHandler) ConsumeClaim(
	groupSession sarama.ConsumerGroupSession,
	claim sarama.ConsumerGroupClaim,
) error {
	for msg := range claim.Messages() {
		h.dispatch(msg)
		groupSession.MarkMessage(msg, "")
	}
	return nil
}
