package memory

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"feed_demo/internal/model"
	"feed_demo/internal/repository"
)

func (s *Store) SaveSnapshot(_ context.Context, snapshot model.Snapshot) error {
	copied, err := deepCopy(snapshot)
	if err != nil {
		s.log.Error("memory snapshot copy failed", zap.Error(err))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &copied
	s.version++
	return nil
}

func (s *Store) LoadSnapshot(_ context.Context) (model.Snapshot, error) {
	s.mu.Lock()
	latest := s.latest
	s.mu.Unlock()
	if latest == nil {
		return model.Snapshot{}, repository.ErrSnapshotNotFound
	}
	return deepCopy(*latest)
}

func deepCopy(snapshot model.Snapshot) (model.Snapshot, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return model.Snapshot{}, err
	}
	var out model.Snapshot
	if err := json.Unmarshal(payload, &out); err != nil {
		return model.Snapshot{}, err
	}
	return out, nil
}
