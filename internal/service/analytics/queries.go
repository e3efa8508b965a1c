package analytics

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/pkg/ctxutil"
)

// Search runs a filtered, paginated search over the user's diary.
func (s *Service) Search(ctx context.Context, input SearchInput) (*domain.SearchResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.cfg.SearchMaxLimit); err != nil {
		return nil, err
	}

	entries, err := s.diaries.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	result := Search(entries, input.params(s.cfg.SearchDefaultLimit))
	return &result, nil
}

// Chart aggregates the user's entries into weekly or monthly buckets.
func (s *Service) Chart(ctx context.Context, input ChartInput) ([]domain.ChartDataPoint, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.StartDate > input.EndDate {
		return []domain.ChartDataPoint{}, nil
	}

	entries, err := s.diaries.ListRange(ctx, userID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return Aggregate(entries, input.StartDate, input.EndDate, domain.Granularity(input.Granularity))
}

// DailyStats returns one summary per diary day in month ("YYYY-MM"),
// ascending by date.
func (s *Service) DailyStats(ctx context.Context, month string) ([]domain.DailyStat, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !domain.IsYearMonth(month) {
		return nil, domain.NewValidationError("month", "must be YYYY-MM")
	}
	first, last, err := domain.MonthBounds(month)
	if err != nil {
		return nil, domain.NewValidationError("month", "must be YYYY-MM")
	}

	entries, err := s.diaries.ListRange(ctx, userID, first, last)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	stats := make([]domain.DailyStat, 0, len(entries))
	for _, e := range entries {
		stats = append(stats, domain.DailyStat{
			Date:            e.Date,
			EmotionMarker:   e.EmotionMarker,
			EmotionCategory: e.EmotionCategory,
			Title:           e.Title,
		})
	}
	slices.SortFunc(stats, func(a, b domain.DailyStat) int { return strings.Compare(a.Date, b.Date) })
	return stats, nil
}
