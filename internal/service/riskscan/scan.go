// Package riskscan runs the risk analysis for every user who wrote in the
// current risk window. It backs the cron-style riskscan command.
package riskscan

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

// DefaultConcurrency bounds the number of users analysed at once.
const DefaultConcurrency = 4

type userLister interface {
	ListUserIDs(ctx context.Context, since string) ([]uuid.UUID, error)
}

type analyzer interface {
	AnalyzeUser(ctx context.Context, userID uuid.UUID) (domain.RiskAnalysis, error)
	RiskWindow() (from, to string)
}

// Result summarises one scan.
type Result struct {
	Scanned int
	AtRisk  int
	Failed  int
	ByLevel map[domain.RiskLevel]int
}

// Scanner fans the risk analysis out over users.
type Scanner struct {
	users       userLister
	analyzer    analyzer
	concurrency int
	log         *slog.Logger
}

// New creates a Scanner. A concurrency below 1 uses DefaultConcurrency.
func New(log *slog.Logger, users userLister, a analyzer, concurrency int) *Scanner {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Scanner{
		users:       users,
		analyzer:    a,
		concurrency: concurrency,
		log:         log.With("service", "riskscan"),
	}
}

// Run analyses every user with an entry since the start of the risk window.
// A failing user is logged and counted; only listing users or context
// cancellation fail the scan.
func (s *Scanner) Run(ctx context.Context) (Result, error) {
	from, to := s.analyzer.RiskWindow()

	ids, err := s.users.ListUserIDs(ctx, from)
	if err != nil {
		return Result{}, fmt.Errorf("list users: %w", err)
	}

	s.log.InfoContext(ctx, "risk scan started",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("users", len(ids)),
	)

	var (
		mu  sync.Mutex
		res = Result{ByLevel: make(map[domain.RiskLevel]int)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			analysis, err := s.analyzer.AnalyzeUser(gctx, id)

			mu.Lock()
			defer mu.Unlock()

			res.Scanned++
			if err != nil {
				res.Failed++
				s.log.ErrorContext(gctx, "analyze user",
					slog.String("user_id", id.String()),
					slog.String("error", err.Error()),
				)
				return nil
			}

			res.ByLevel[analysis.RiskLevel]++
			if analysis.IsAtRisk {
				res.AtRisk++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, nil
}
