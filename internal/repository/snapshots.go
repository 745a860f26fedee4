package repository

import (
	"context"
	"errors"

	"feed_demo/internal/model"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository persists whole-feed snapshots. LoadSnapshot returns the
// most recently saved one, or ErrSnapshotNotFound.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot model.Snapshot) error
	LoadSnapshot(ctx context.Context) (model.Snapshot, error)
}
