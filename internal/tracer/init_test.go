package tracer

import (
	"context"
	"testing"

	"noteful-be/internal/config"
	"noteful-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestInitTracer_Disabled(t *testing.T) {
	shutdown := InitTracer(context.Background(), config.TelemetryConfig{Enabled: false}, logger.NewNopLogger())
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracer_Enabled(t *testing.T) {
	// The exporter connects lazily, so no collector is needed to start
	shutdown := InitTracer(context.Background(), config.TelemetryConfig{Enabled: true, OtlpEndpoint: "localhost:4318"}, logger.NewNopLogger())
	assert.NotNil(t, shutdown)
	_ = shutdown(context.Background())
}
