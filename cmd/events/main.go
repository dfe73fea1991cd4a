package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"noteful-be/internal/config"
	"noteful-be/pkg/events"
	pktNats "noteful-be/pkg/nats"

	"github.com/fatih/color"
)

func main() {
	filter := flag.String("type", ">", "event type to follow, e.g. note.created or note.*")
	durable := flag.String("durable", "", "durable consumer name; empty follows new events only")
	flag.Parse()

	cfg := config.Load()
	if cfg.Events.NatsURL == "" {
		log.Fatal("Error: NATS_URL is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sub, err := pktNats.NewSubscriber(cfg.Events.NatsURL)
	if err != nil {
		log.Fatal("Error: ", err)
	}
	defer sub.Close()

	if err := sub.Subscribe(ctx, pktNats.Subject(*filter), *durable, printEvent); err != nil {
		log.Fatal("Error: ", err)
	}

	log.Printf("Following %s on %s", pktNats.Subject(*filter), cfg.Events.NatsURL)
	<-ctx.Done()
}

func printEvent(_ context.Context, event events.Event) error {
	fmt.Println(formatEvent(event))
	return nil
}

func formatEvent(event events.Event) string {
	paint := color.New(color.FgCyan).SprintFunc()
	switch {
	case strings.HasSuffix(event.EventType(), ".created"):
		paint = color.New(color.FgGreen).SprintFunc()
	case strings.HasSuffix(event.EventType(), ".deleted"):
		paint = color.New(color.FgRed).SprintFunc()
	}

	return fmt.Sprintf("%s %-15s %v",
		event.Timestamp().Format("15:04:05.000"),
		paint(event.EventType()),
		event.Payload(),
	)
}
