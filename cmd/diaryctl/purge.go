package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodbook-backend/internal/adapter/postgres"
	pgdiary "github.com/heartmarshall/moodbook-backend/internal/adapter/postgres/diary"
	pgrisklog "github.com/heartmarshall/moodbook-backend/internal/adapter/postgres/risklog"
	"github.com/heartmarshall/moodbook-backend/internal/app"
)

var purgeUser string

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every diary entry and risk log of a user in one transaction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUser(purgeUser)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := requirePostgres(cfg); err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		res, err := runPurge(cmd.Context(), postgres.NewTxManager(pool), pgdiary.New(pool), pgrisklog.New(pool), userID)
		if err != nil {
			return err
		}

		logger.Info("user purged",
			slog.String("user_id", userID.String()),
			slog.Int64("entries", res.Entries),
			slog.Int64("risk_logs", res.RiskLogs),
		)
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	purgeCmd.Flags().StringVar(&purgeUser, "user", "", "User ID (UUID)")
	rootCmd.AddCommand(purgeCmd)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type userPurger interface {
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type purgeResult struct {
	Entries  int64 `json:"entries"`
	RiskLogs int64 `json:"riskLogs"`
}

func runPurge(ctx context.Context, tx txRunner, diaries, riskLogs userPurger, userID uuid.UUID) (purgeResult, error) {
	var res purgeResult
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := diaries.DeleteByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("delete entries: %w", err)
		}
		m, err := riskLogs.DeleteByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("delete risk logs: %w", err)
		}
		res = purgeResult{Entries: n, RiskLogs: m}
		return nil
	})
	if err != nil {
		return purgeResult{}, err
	}
	return res, nil
}
