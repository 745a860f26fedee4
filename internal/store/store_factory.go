package store

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"feed_demo/internal/config"
	"feed_demo/internal/db"
	"feed_demo/internal/repository"
	"feed_demo/internal/store/memory"
	"feed_demo/internal/store/mysql"
)

func NewStore(cfg *config.Config, logger *zap.Logger) (repository.SnapshotRepository, error) {
	if cfg.MySQLDSN == "" {
		logger.Info("snapshot store: memory")
		return memory.New(logger), nil
	}
	sqlDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Error("mysql open failed", zap.Error(err))
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Error("mysql ping failed", zap.Error(err))
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("snapshot store: mysql")
	return mysql.New(db.New(sqlDB), logger), nil
}
