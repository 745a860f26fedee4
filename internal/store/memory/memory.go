package memory

import (
	"sync"

	"go.uber.org/zap"

	"feed_demo/internal/model"
)

type Store struct {
	mu      sync.Mutex
	latest  *model.Snapshot
	version int64
	log     *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{log: logger}
}

// Version counts the snapshots saved so far.
func (s *Store) Version() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}
