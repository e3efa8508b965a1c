package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodbook-backend/internal/app"
	"github.com/heartmarshall/moodbook-backend/internal/config"
	"github.com/heartmarshall/moodbook-backend/internal/service/analytics"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "diaryctl",
	Short:        "Moodbook diary administration",
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (overrides CONFIG_PATH)")
}

var errUserRequired = errors.New("--user is required")

// env is the configuration, logger and storage a command runs against.
type env struct {
	cfg *config.Config
	log *slog.Logger
	st  *app.Storage
}

// loadConfig reads --config when given, otherwise CONFIG_PATH.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	st, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return &env{cfg: cfg, log: logger, st: st}, nil
}

func (e *env) Close() { e.st.Close() }

func (e *env) analytics() *analytics.Service {
	return analytics.NewService(e.log, e.st.Diaries, e.st.RiskLogs, app.AnalyticsConfig(e.cfg.Analytics))
}

func parseUser(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, errUserRequired
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --user %q: %w", s, err)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
