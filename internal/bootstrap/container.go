package bootstrap

import (
	"context"
	"errors"

	"noteful-be/internal/config"
	"noteful-be/internal/controller"
	"noteful-be/internal/pkg/logger"
	"noteful-be/internal/repository/unitofwork"
	"noteful-be/internal/service"

	pktNats "noteful-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	NoteController   controller.INoteController
	FolderController controller.IFolderController
	TagController    controller.ITagController

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func() error
}

func NewContainer(ctx context.Context, uowFactory unitofwork.RepositoryFactory, cfg *config.Config, sysLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		logger.NewWatermillAdapter(sysLogger),
	)
	c.closers = append(c.closers, pubSub.Close)

	// 2. Optional external forwarding
	var forwarder service.EventForwarder
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(ctx, cfg.Events.NatsURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "NATS unavailable, change events stay in process", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, func() error { natsPub.Close(); return nil })
		}
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Events.Topic, forwarder, sysLogger)

	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)
	folderService := service.NewFolderService(uowFactory, publisherService, sysLogger)
	tagService := service.NewTagService(uowFactory, publisherService, sysLogger)

	// 4. Controllers
	c.NoteController = controller.NewNoteController(noteService)
	c.FolderController = controller.NewFolderController(folderService)
	c.TagController = controller.NewTagController(tagService)

	return c
}

// Close releases event infrastructure in reverse order of creation.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
