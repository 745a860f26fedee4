package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"feed_demo/internal/db"
	"feed_demo/internal/model"
	"feed_demo/internal/repository"
)

// SaveSnapshot appends the snapshot and drops the ones before it.
func (s *Store) SaveSnapshot(ctx context.Context, snapshot model.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.log.Error("snapshot marshal failed", zap.Error(err))
		return err
	}
	result, err := s.queries.CreateSnapshot(ctx, db.CreateSnapshotParams{
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.Error("sql create snapshot failed", zap.Int("posts", len(snapshot.Posts)), zap.Error(err))
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		s.log.Error("sql last insert id failed", zap.Error(err))
		return err
	}
	if _, err := s.queries.PruneSnapshots(ctx, id); err != nil {
		// The new row is already stored; older rows are only dead weight.
		s.log.Warn("sql prune snapshots failed", zap.Int64("keep_from", id), zap.Error(err))
	}
	return nil
}

func (s *Store) LoadSnapshot(ctx context.Context) (model.Snapshot, error) {
	row, err := s.queries.GetLatestSnapshot(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Snapshot{}, repository.ErrSnapshotNotFound
	}
	if err != nil {
		s.log.Error("sql get latest snapshot failed", zap.Error(err))
		return model.Snapshot{}, err
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(row.Payload, &snapshot); err != nil {
		s.log.Error("snapshot unmarshal failed", zap.Int64("id", row.ID), zap.Error(err))
		return model.Snapshot{}, err
	}
	return snapshot, nil
}
