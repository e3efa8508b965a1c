package analytics

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

// SearchInput holds raw search parameters. Empty strings mean no filter;
// zero Page and Limit mean the defaults.
type SearchInput struct {
	Keyword         string
	StartDate       string
	EndDate         string
	EmotionCategory string
	Page            int
	Limit           int
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.StartDate != "" && !domain.IsISODate(i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "must be YYYY-MM-DD"})
	}
	if i.EndDate != "" && !domain.IsISODate(i.EndDate) {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must be YYYY-MM-DD"})
	}
	if i.EmotionCategory != "" && !domain.EmotionCategory(i.EmotionCategory).IsValid() {
		errs = append(errs, domain.FieldError{Field: "emotionCategory", Message: "unknown category"})
	}
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxLimit)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i SearchInput) params(defaultLimit int) domain.SearchParams {
	limit := i.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	return domain.SearchParams{
		Keyword:         strings.TrimSpace(i.Keyword),
		StartDate:       i.StartDate,
		EndDate:         i.EndDate,
		EmotionCategory: domain.EmotionCategory(i.EmotionCategory),
		Page:            i.Page,
		Limit:           limit,
	}
}

// ChartInput holds chart aggregation parameters.
type ChartInput struct {
	StartDate   string
	EndDate     string
	Granularity string
}

// Validate checks all fields and collects all errors.
func (i ChartInput) Validate() error {
	var errs []domain.FieldError

	if !domain.IsISODate(i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "start", Message: "must be YYYY-MM-DD"})
	}
	if !domain.IsISODate(i.EndDate) {
		errs = append(errs, domain.FieldError{Field: "end", Message: "must be YYYY-MM-DD"})
	}
	if !domain.Granularity(i.Granularity).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be weekly or monthly"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
