package main

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

var (
	historyUser  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded risk logs for a user, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUser(historyUser)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		return runHistory(cmd.Context(), cmd.OutOrStdout(), e.analytics(), userID, historyLimit)
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyUser, "user", "", "User ID (UUID)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of logs (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

type historyLister interface {
	RiskHistory(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskLog, error)
}

func runHistory(ctx context.Context, w io.Writer, svc historyLister, userID uuid.UUID, limit int) error {
	logs, err := svc.RiskHistory(ctx, userID, limit)
	if err != nil {
		return err
	}
	return printJSON(w, toRiskLogViews(logs))
}
