// Command riskscan analyses the recent diary of every user who wrote within
// the risk window and records a risk log for medium and high verdicts. It is
// intended to be invoked by an external cron job against postgres storage.
//
// Exit codes: 0 = success (including users that failed individually),
// 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/moodbook-backend/internal/app"
	"github.com/heartmarshall/moodbook-backend/internal/config"
	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/internal/service/analytics"
	"github.com/heartmarshall/moodbook-backend/internal/service/riskscan"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Storage.Driver != config.StoragePostgres {
		logger.Error("riskscan requires postgres storage", slog.String("driver", cfg.Storage.Driver))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	st, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	svc := analytics.NewService(logger, st.Diaries, st.RiskLogs, app.AnalyticsConfig(cfg.Analytics))

	res, err := riskscan.New(logger, st.Diaries, svc, riskscan.DefaultConcurrency).Run(ctx)
	if err != nil {
		logger.Error("risk scan failed", slog.String("error", err.Error()))
		st.Close()
		os.Exit(1)
	}

	logger.Info("risk scan completed",
		slog.Int("scanned", res.Scanned),
		slog.Int("at_risk", res.AtRisk),
		slog.Int("failed", res.Failed),
		slog.Int("high", res.ByLevel[domain.RiskHigh]),
		slog.Int("medium", res.ByLevel[domain.RiskMedium]),
		slog.Int("low", res.ByLevel[domain.RiskLow]),
	)
}
