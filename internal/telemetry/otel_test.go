package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"feed_demo/internal/config"
)

func TestNormalizeOTLPEndpoint(t *testing.T) {
	cases := map[string]string{
		"collector:4317":            "collector:4317",
		"http://collector:4317":     "collector:4317",
		"https://otel.example:443/": "otel.example:443",
	}
	for in, want := range cases {
		got, err := normalizeOTLPEndpoint(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := normalizeOTLPEndpoint("http://")
	require.Error(t, err)
}

func TestInitWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), &config.Config{}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
