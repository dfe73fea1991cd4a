package service

import (
	"context"
	"time"

	"noteful-be/internal/pkg/logger"
	"noteful-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	consumerModule = "ConsumerService"
	forwardTimeout = 5 * time.Second
)

// EventForwarder relays change events outside the process.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	forwarder  EventForwarder
	logger     logger.ILogger
}

// NewConsumerService audits every change event. forwarder may be nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	forwarder EventForwarder,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		forwarder:  forwarder,
		logger:     logger,
	}
}

// Consume subscribes and processes messages in the background until ctx is
// done.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Nothing here is worth redelivering, so every message is acked
	defer msg.Ack()

	event, err := events.Decode(msg.Payload)
	if err != nil {
		cs.logger.Error(consumerModule, "Dropping undecodable event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		return
	}

	cs.logger.Info(consumerModule, "Change recorded", map[string]interface{}{
		"type":        event.EventType(),
		"data":        event.Payload(),
		"occurred_at": event.Timestamp(),
	})

	if cs.forwarder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, forwardTimeout)
	defer cancel()

	if err := cs.forwarder.Publish(ctx, event); err != nil {
		cs.logger.Warn(consumerModule, "Failed to forward event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
