package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	memdiary "github.com/heartmarshall/moodbook-backend/internal/adapter/memory/diary"
	memrisklog "github.com/heartmarshall/moodbook-backend/internal/adapter/memory/risklog"
	"github.com/heartmarshall/moodbook-backend/internal/adapter/postgres"
	pgdiary "github.com/heartmarshall/moodbook-backend/internal/adapter/postgres/diary"
	pgrisklog "github.com/heartmarshall/moodbook-backend/internal/adapter/postgres/risklog"
	"github.com/heartmarshall/moodbook-backend/internal/config"
	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/migrations"
)

// DiaryStore is the diary storage surface shared by the services and tools.
type DiaryStore interface {
	Create(ctx context.Context, userID uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.DiaryEntry, error)
	Update(ctx context.Context, userID, id uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID, date string) error
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)
	ListByMonth(ctx context.Context, userID uuid.UUID, month string) ([]domain.EmotionMark, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DiaryEntry, error)
	ListUserIDs(ctx context.Context, since string) ([]uuid.UUID, error)
}

// RiskLogStore is the risk log storage surface.
type RiskLogStore interface {
	Create(ctx context.Context, l *domain.RiskLog) (*domain.RiskLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskLog, error)
}

// Storage bundles the repositories selected by StorageConfig.Driver.
// Pool is nil for the in-memory driver.
type Storage struct {
	Driver   string
	Diaries  DiaryStore
	RiskLogs RiskLogStore
	Pool     *pgxpool.Pool
}

// OpenStorage builds the repositories for cfg.Storage.Driver. For postgres it
// connects, optionally applies migrations, and the caller must Close.
func OpenStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		return &Storage{
			Driver:   config.StorageMemory,
			Diaries:  memdiary.New(),
			RiskLogs: memrisklog.New(),
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, log, pool, migrations.FS); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return &Storage{
			Driver:   config.StoragePostgres,
			Diaries:  pgdiary.New(pool),
			RiskLogs: pgrisklog.New(pool),
			Pool:     pool,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// Close releases the connection pool, if any.
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
