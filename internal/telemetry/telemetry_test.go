package telemetry

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureHoneycombEnv(t *testing.T) {
	t.Setenv(apiKeyEnv, "secret")
	t.Setenv(datasetEnv, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	assert.True(t, ConfigureHoneycombEnv())
	assert.Equal(t, honeycombEndpoint, os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	assert.Equal(t, "x-honeycomb-team=secret,x-honeycomb-dataset=lowlymage", os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}

func TestConfigureHoneycombEnvWithoutKey(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	assert.False(t, ConfigureHoneycombEnv())
	assert.Empty(t, os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}

func TestTracersAreUsableWithoutSetup(t *testing.T) {
	_, span := Tracer("battle").Start(context.Background(), "battle.turn")
	span.End()

	_, span = NoopTracer().Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, Disabled()(context.Background()))
}
