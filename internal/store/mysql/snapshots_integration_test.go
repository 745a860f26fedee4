//go:build integration

package mysql

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"feed_demo/internal/db"
	"feed_demo/internal/domain"
	"feed_demo/internal/repository"
)

func TestMySQLSnapshotStoreIntegration(t *testing.T) {
	ctx := context.Background()
	dsn, cleanup := setupMySQLContainer(t, ctx)
	defer cleanup()

	dbConn, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	defer dbConn.Close()

	store := New(db.New(dbConn), zap.NewNop())

	_, err = store.LoadSnapshot(ctx)
	require.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	first := domain.Seed()
	require.NoError(t, store.SaveSnapshot(ctx, first))

	second := domain.Seed()
	second.Posts[1].Title = "edited"
	second.Posts[1].Reactions[domain.ReactionWow] = 3
	require.NoError(t, store.SaveSnapshot(ctx, second))

	got, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, second, got)

	var rows int
	require.NoError(t, dbConn.QueryRowContext(ctx, "SELECT COUNT(*) FROM feed_snapshots").Scan(&rows))
	require.Equal(t, 1, rows)
}
