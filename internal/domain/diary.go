package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DiaryEntry is one journal record for one user on one calendar date.
// Date is an ISO YYYY-MM-DD string; zero-padded strings compare in
// chronological order, and the rest of the code relies on that.
type DiaryEntry struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Date            string
	Title           string
	Note            string
	EmotionMarker   string
	EmotionCategory EmotionCategory
	Mood            string
	Weather         *string
	Activities      []string
	AIComment       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DiaryFields is the user-editable part of an entry.
type DiaryFields struct {
	Title         string
	Note          string
	EmotionMarker string
	Mood          string
	Weather       *string
	Activities    []string
	AIComment     *string
}

// NewDiaryEntry builds an entry for date from fields. The category is always
// derived from the marker.
func NewDiaryEntry(id, userID uuid.UUID, date string, f DiaryFields, now time.Time) DiaryEntry {
	e := DiaryEntry{
		ID:        id,
		UserID:    userID,
		Date:      date,
		CreatedAt: now,
	}
	e.Apply(f, now)
	return e
}

// Apply overwrites the editable fields and re-derives the category.
func (e *DiaryEntry) Apply(f DiaryFields, now time.Time) {
	e.Title = f.Title
	e.Note = f.Note
	e.EmotionMarker = f.EmotionMarker
	e.EmotionCategory = Classify(f.EmotionMarker)
	e.Mood = f.Mood
	e.Weather = cloneString(f.Weather)
	e.Activities = cloneActivities(f.Activities)
	e.AIComment = cloneString(f.AIComment)
	e.UpdatedAt = now
}

// Clone returns a deep copy so callers can hold a stable snapshot.
func (e DiaryEntry) Clone() DiaryEntry {
	e.Weather = cloneString(e.Weather)
	e.AIComment = cloneString(e.AIComment)
	e.Activities = cloneActivities(e.Activities)
	return e
}

// Mark projects the entry onto its heatmap cell.
func (e DiaryEntry) Mark() EmotionMark {
	return EmotionMark{
		Date:            e.Date,
		EmotionMarker:   e.EmotionMarker,
		EmotionCategory: e.EmotionCategory,
	}
}

// EmotionMark is the heatmap-shaped projection of an entry.
type EmotionMark struct {
	Date            string
	EmotionMarker   string
	EmotionCategory EmotionCategory
}

// DailyStat is a per-day summary used by the monthly stats view.
type DailyStat struct {
	Date            string
	EmotionMarker   string
	EmotionCategory EmotionCategory
	Title           string
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneActivities(a []string) []string {
	if a == nil {
		return []string{}
	}
	return slices.Clone(a)
}
