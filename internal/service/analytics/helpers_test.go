package analytics

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

var markerFor = map[domain.EmotionCategory]string{
	domain.EmotionHappy:   "😊",
	domain.EmotionLove:    "🥰",
	domain.EmotionExcited: "🎉",
	domain.EmotionCalm:    "😌",
	domain.EmotionTired:   "😴",
	domain.EmotionSad:     "😢",
	domain.EmotionAngry:   "😠",
	domain.EmotionAnxious: "😰",
	domain.EmotionNeutral: "📝",
	domain.EmotionHopeful: "🌈",
}

func entry(date, title string, cat domain.EmotionCategory) domain.DiaryEntry {
	return domain.NewDiaryEntry(uuid.New(), uuid.Nil, date, domain.DiaryFields{
		Title:         title,
		Note:          "note for " + title,
		EmotionMarker: markerFor[cat],
		Mood:          "ok",
	}, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

// recentWindow builds entries most recent first, one per day ending at
// 2025-01-31, with the given categories in that order.
func recentWindow(cats ...domain.EmotionCategory) []domain.DiaryEntry {
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	out := make([]domain.DiaryEntry, 0, len(cats))
	for i, c := range cats {
		d := domain.FormatDate(end.AddDate(0, 0, -i))
		out = append(out, entry(d, fmt.Sprintf("day %d", i), c))
	}
	return out
}

func repeat(c domain.EmotionCategory, n int) []domain.EmotionCategory {
	out := make([]domain.EmotionCategory, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func concat(parts ...[]domain.EmotionCategory) []domain.EmotionCategory {
	var out []domain.EmotionCategory
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
