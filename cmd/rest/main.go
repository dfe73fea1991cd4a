package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"noteful-be/internal/bootstrap"
	"noteful-be/internal/config"
	"noteful-be/internal/pkg/logger"
	"noteful-be/internal/server"
	"noteful-be/internal/tracer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Logger
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 3. Tracer
	shutdownTracer := tracer.InitTracer(ctx, cfg.Telemetry, sysLogger)
	defer shutdownTracer(context.Background())

	// 4. Storage
	uowFactory, closeStore, err := bootstrap.NewRepositoryFactory(cfg, sysLogger)
	if err != nil {
		log.Panicf("Unable to open storage: %v", err)
	}
	defer closeStore()

	// 5. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, uowFactory, cfg, sysLogger)
	defer container.Close()

	// 6. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		sysLogger.Error("Main", "Failed to start event consumer", map[string]interface{}{"error": err})
	}

	// 7. Run Server
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		sysLogger.Info("Main", "Shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sysLogger.Error("Main", "Graceful shutdown failed", map[string]interface{}{"error": err})
		}
	}()

	sysLogger.Info("Main", "Server starting", map[string]interface{}{
		"port":    cfg.App.Port,
		"driver":  cfg.Database.Driver,
		"prefix":  cfg.App.ApiPrefix,
		"natsUrl": cfg.Events.NatsURL,
	})
	if err := srv.Run(); err != nil {
		sysLogger.Error("Main", "Server stopped", map[string]interface{}{"error": err})
	}
}
