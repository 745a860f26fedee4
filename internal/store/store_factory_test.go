package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"feed_demo/internal/config"
	"feed_demo/internal/store/memory"
)

func TestNewStoreDefaultsToMemory(t *testing.T) {
	repo, err := NewStore(&config.Config{}, zap.NewNop())
	require.NoError(t, err)
	require.IsType(t, &memory.Store{}, repo)
}

func TestNewStoreRejectsBadDSN(t *testing.T) {
	_, err := NewStore(&config.Config{MySQLDSN: "not a dsn"}, zap.NewNop())
	require.Error(t, err)
}
