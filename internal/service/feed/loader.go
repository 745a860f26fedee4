package feed

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"feed_demo/internal/domain"
	"feed_demo/internal/repository"
	"feed_demo/internal/state"
)

const loadTimeout = 10 * time.Second

// LoadStore restores the feed from the latest snapshot, falling back to the
// seed data when nothing was saved yet.
func LoadStore(repo repository.SnapshotRepository, logger *zap.Logger) (*state.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	snapshot, err := repo.LoadSnapshot(ctx)
	switch {
	case errors.Is(err, repository.ErrSnapshotNotFound):
		logger.Info("no snapshot found, seeding feed")
		snapshot = domain.Seed()
	case err != nil:
		logger.Error("snapshot load failed", zap.Error(err))
		return nil, err
	default:
		logger.Info("feed restored from snapshot",
			zap.Int("users", len(snapshot.Users)),
			zap.Int("posts", len(snapshot.Posts)),
			zap.Int("notifications", len(snapshot.Notifications)),
		)
	}
	return state.New(snapshot, state.ULIDGenerator{}, state.UUIDGenerator{}), nil
}
