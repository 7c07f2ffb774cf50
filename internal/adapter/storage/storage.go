// Package storage selects the storage backend at startup. Both engines share
// one statement set and one behavior contract.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/topiclog/internal/adapter/postgres"
	"github.com/heartmarshall/topiclog/internal/adapter/sqlite"
	"github.com/heartmarshall/topiclog/internal/config"
	"github.com/heartmarshall/topiclog/internal/domain"
)

// Backend is the persistence contract implemented by the embedded and
// networked engines.
type Backend interface {
	CreateUser(ctx context.Context, username, credential string, displayName *string) (int64, error)
	FindUserByName(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)

	AppendRecord(ctx context.Context, rec domain.NewRecord) (*domain.TopicRecord, error)
	ListRecords(ctx context.Context, userID int64) ([]domain.TopicRecord, error)
	RenameRecord(ctx context.Context, id int64, title string) error
	DeleteRecord(ctx context.Context, id int64) error
	ClearRecords(ctx context.Context, userID int64) error

	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Backend = (*sqlite.Store)(nil)
	_ Backend = (*postgres.Store)(nil)
)

// Open builds the backend named by storageCfg.Driver and applies migrations.
func Open(ctx context.Context, storageCfg config.StorageConfig, dbCfg config.DatabaseConfig, logger *slog.Logger) (Backend, error) {
	log := logger.With("service", "storage")

	switch storageCfg.Driver {
	case config.DriverEmbedded:
		store, err := sqlite.Open(ctx, storageCfg.SQLitePath, storageCfg.OpTimeout, log)
		if err != nil {
			return nil, fmt.Errorf("open embedded storage: %w", err)
		}
		return store, nil

	case config.DriverNetworked:
		pool, err := postgres.NewPool(ctx, dbCfg, storageCfg.OpTimeout)
		if err != nil {
			return nil, fmt.Errorf("open networked storage: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate networked storage: %w", err)
		}
		log.InfoContext(ctx, "networked storage ready",
			slog.Int("max_conns", int(dbCfg.MaxConns)),
		)
		return postgres.NewStore(pool, storageCfg.OpTimeout), nil

	default:
		return nil, fmt.Errorf("storage driver %q: %w", storageCfg.Driver, domain.ErrValidation)
	}
}
