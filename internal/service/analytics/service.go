// Package analytics serves search, chart, daily stats and risk analysis over
// a user's diary. The analysis functions are pure and run over a snapshot
// read from the repository.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

type diaryRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DiaryEntry, error)
}

type riskLogRepo interface {
	Create(ctx context.Context, l *domain.RiskLog) (*domain.RiskLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskLog, error)
}

// Config holds analytics tuning loaded from configuration.
type Config struct {
	RiskWindowDays     int
	SearchDefaultLimit int
	SearchMaxLimit     int
	RiskLogEnabled     bool
}

// Service provides the analytics read operations.
type Service struct {
	diaries  diaryRepo
	riskLogs riskLogRepo
	cfg      Config
	now      func() time.Time
	log      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used to anchor the risk window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new analytics service.
func NewService(log *slog.Logger, diaries diaryRepo, riskLogs riskLogRepo, cfg Config, opts ...Option) *Service {
	if cfg.RiskWindowDays <= 0 {
		cfg.RiskWindowDays = DefaultRiskWindow
	}
	if cfg.SearchDefaultLimit <= 0 {
		cfg.SearchDefaultLimit = DefaultLimit
	}
	if cfg.SearchMaxLimit < cfg.SearchDefaultLimit {
		cfg.SearchMaxLimit = cfg.SearchDefaultLimit
	}

	s := &Service{
		diaries:  diaries,
		riskLogs: riskLogs,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With("service", "analytics"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
