package service

import (
	"context"

	"noteful-be/internal/pkg/logger"
	"noteful-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (c *publisherService) Publish(ctx context.Context, event events.Event) error {
	payload, err := events.Encode(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("type", event.EventType())

	return c.publisher.Publish(c.topicName, msg)
}

// publishChange announces a completed mutation. The mutation already
// happened, so a failed publish is logged and not returned.
func publishChange(ctx context.Context, pub IPublisherService, log logger.ILogger, module, eventType string, data map[string]interface{}) {
	if err := pub.Publish(ctx, events.New(eventType, data)); err != nil {
		log.Warn(module, "Failed to publish change event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
