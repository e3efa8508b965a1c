package main

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodbook-backend/internal/service/analytics"
	"github.com/heartmarshall/moodbook-backend/pkg/ctxutil"
)

var riskUser string

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Analyse a user's recent entries for a negative-mood pattern",
	Long: "Runs the same analysis as GET /api/risk. A medium or high verdict is " +
		"recorded as a risk log when risk logging is enabled.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUser(riskUser)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		return runRisk(cmd.Context(), cmd.OutOrStdout(), e.analytics(), userID)
	},
}

func init() {
	riskCmd.Flags().StringVar(&riskUser, "user", "", "User ID (UUID)")
	rootCmd.AddCommand(riskCmd)
}

type riskReporter interface {
	Risk(ctx context.Context) (*analytics.RiskReport, error)
}

func runRisk(ctx context.Context, w io.Writer, svc riskReporter, userID uuid.UUID) error {
	report, err := svc.Risk(ctxutil.WithUserID(ctx, userID))
	if err != nil {
		return err
	}
	return printJSON(w, toRiskView(report))
}
