package main

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/internal/service/analytics"
	"github.com/heartmarshall/moodbook-backend/pkg/ctxutil"
)

var (
	chartUser  string
	chartInput analytics.ChartInput
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Aggregate a user's emotions into weekly or monthly buckets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUser(chartUser)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		return runChart(cmd.Context(), cmd.OutOrStdout(), e.analytics(), userID, chartInput)
	},
}

func init() {
	f := chartCmd.Flags()
	f.StringVar(&chartUser, "user", "", "User ID (UUID)")
	f.StringVar(&chartInput.StartDate, "start", "", "First date, YYYY-MM-DD")
	f.StringVar(&chartInput.EndDate, "end", "", "Last date, YYYY-MM-DD")
	f.StringVar(&chartInput.Granularity, "type", string(domain.GranularityWeekly), "weekly or monthly")
	rootCmd.AddCommand(chartCmd)
}

type charter interface {
	Chart(ctx context.Context, input analytics.ChartInput) ([]domain.ChartDataPoint, error)
}

func runChart(ctx context.Context, w io.Writer, svc charter, userID uuid.UUID, input analytics.ChartInput) error {
	points, err := svc.Chart(ctxutil.WithUserID(ctx, userID), input)
	if err != nil {
		return err
	}
	return printJSON(w, toChartView(points))
}
