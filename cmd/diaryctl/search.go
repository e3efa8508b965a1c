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
	searchUser  string
	searchInput analytics.SearchInput
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search a user's diary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUser(searchUser)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		return runSearch(cmd.Context(), cmd.OutOrStdout(), e.analytics(), userID, searchInput)
	},
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchUser, "user", "", "User ID (UUID)")
	f.StringVar(&searchInput.Keyword, "keyword", "", "Case-insensitive match on title or note")
	f.StringVar(&searchInput.StartDate, "start", "", "Earliest date, YYYY-MM-DD")
	f.StringVar(&searchInput.EndDate, "end", "", "Latest date, YYYY-MM-DD")
	f.StringVar(&searchInput.EmotionCategory, "category", "", "Emotion category")
	f.IntVar(&searchInput.Page, "page", 1, "Page number")
	f.IntVar(&searchInput.Limit, "limit", 0, "Page size (0 = default)")
	rootCmd.AddCommand(searchCmd)
}

type searcher interface {
	Search(ctx context.Context, input analytics.SearchInput) (*domain.SearchResult, error)
}

func runSearch(ctx context.Context, w io.Writer, svc searcher, userID uuid.UUID, input analytics.SearchInput) error {
	res, err := svc.Search(ctxutil.WithUserID(ctx, userID), input)
	if err != nil {
		return err
	}
	return printJSON(w, toSearchView(res))
}
