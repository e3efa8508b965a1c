package diary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

const (
	MaxTitleLength    = 200
	MaxNoteLength     = 10000
	MaxMarkerLength   = 32
	MaxMoodLength     = 50
	MaxWeatherLength  = 50
	MaxActivities     = 20
	MaxActivityLength = 50
)

// EntryContent holds the user-editable part of an entry as submitted.
type EntryContent struct {
	Title         string
	Note          string
	EmotionMarker string
	Mood          string
	Weather       *string
	Activities    []string
}

func (c EntryContent) validate() []domain.FieldError {
	var errs []domain.FieldError

	checkLen := func(field, v string, limit int) {
		if utf8.RuneCountInString(strings.TrimSpace(v)) > limit {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", limit)})
		}
	}

	checkLen("title", c.Title, MaxTitleLength)
	checkLen("note", c.Note, MaxNoteLength)
	checkLen("emotionMarker", c.EmotionMarker, MaxMarkerLength)
	checkLen("mood", c.Mood, MaxMoodLength)
	if c.Weather != nil {
		checkLen("weather", *c.Weather, MaxWeatherLength)
	}

	if len(c.Activities) > MaxActivities {
		errs = append(errs, domain.FieldError{Field: "activities", Message: fmt.Sprintf("max %d items", MaxActivities)})
	}
	for i, a := range c.Activities {
		checkLen(fmt.Sprintf("activities[%d]", i), a, MaxActivityLength)
	}

	return errs
}

// fields returns the trimmed domain fields without an AI comment.
func (c EntryContent) fields() domain.DiaryFields {
	return domain.DiaryFields{
		Title:         strings.TrimSpace(c.Title),
		Note:          strings.TrimSpace(c.Note),
		EmotionMarker: strings.TrimSpace(c.EmotionMarker),
		Mood:          strings.TrimSpace(c.Mood),
		Weather:       trimOrNil(c.Weather),
		Activities:    trimActivities(c.Activities),
	}
}

func validateDate(field, date string) []domain.FieldError {
	if date == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if !domain.IsISODate(date) {
		return []domain.FieldError{{Field: field, Message: "must be YYYY-MM-DD"}}
	}
	return nil
}

// CreateEntryInput holds the parameters for writing an entry on a date.
type CreateEntryInput struct {
	Date string
	EntryContent
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	errs := validateDate("date", i.Date)
	errs = append(errs, i.EntryContent.validate()...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds the parameters for rewriting the entry on a date.
// ID may be uuid.Nil to address the entry by date alone.
type UpdateEntryInput struct {
	ID   uuid.UUID
	Date string
	EntryContent
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	errs := validateDate("date", i.Date)
	errs = append(errs, i.EntryContent.validate()...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteEntryInput addresses the entry to delete.
type DeleteEntryInput struct {
	ID   uuid.UUID
	Date string
}

// Validate checks all fields and collects all errors.
func (i DeleteEntryInput) Validate() error {
	if errs := validateDate("date", i.Date); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
