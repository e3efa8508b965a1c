package analytics

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

// Aggregate counts entries dated within [start, end] per category, bucketed
// by week (keyed by the Sunday that starts it) or by month. Only buckets
// that received entries are returned, ascending by key.
func Aggregate(entries []domain.DiaryEntry, start, end string, g domain.Granularity) ([]domain.ChartDataPoint, error) {
	if !g.IsValid() {
		return nil, domain.NewValidationError("type", fmt.Sprintf("must be %q or %q", domain.GranularityWeekly, domain.GranularityMonthly))
	}

	buckets := make(map[string]*domain.ChartDataPoint)
	for _, e := range entries {
		if e.Date < start || e.Date > end {
			continue
		}
		t, err := domain.ParseDate(e.Date)
		if err != nil {
			continue
		}

		key, label := bucketOf(t, g)
		b, ok := buckets[key]
		if !ok {
			b = newDataPoint(key, label)
			buckets[key] = b
		}

		cat := e.EmotionCategory
		if !cat.IsValid() {
			cat = domain.EmotionNeutral
		}
		b.Counts[cat]++
		b.Total++
	}

	out := make([]domain.ChartDataPoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b domain.ChartDataPoint) int {
		return strings.Compare(a.BucketKey, b.BucketKey)
	})
	return out, nil
}

// WeekStart returns the Sunday on or before t.
func WeekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

func bucketOf(t time.Time, g domain.Granularity) (key, label string) {
	if g == domain.GranularityMonthly {
		return t.Format(domain.MonthLayout), t.Format("Jan 2006")
	}
	ws := WeekStart(t)
	return domain.FormatDate(ws), fmt.Sprintf("%d/%d", int(ws.Month()), ws.Day())
}

func newDataPoint(key, label string) *domain.ChartDataPoint {
	counts := make(map[domain.EmotionCategory]int, len(domain.EmotionCategories))
	for _, c := range domain.EmotionCategories {
		counts[c] = 0
	}
	return &domain.ChartDataPoint{
		BucketKey:    key,
		DisplayLabel: label,
		Counts:       counts,
	}
}
