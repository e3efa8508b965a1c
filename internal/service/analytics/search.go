package analytics

import (
	"slices"
	"strings"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Search filters entries by keyword, date range and category, sorts matches
// newest first and returns the requested page. An out-of-range page yields
// an empty slice. entries is not modified.
func Search(entries []domain.DiaryEntry, p domain.SearchParams) domain.SearchResult {
	page := p.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	keyword := strings.ToLower(p.Keyword)
	matches := make([]domain.DiaryEntry, 0, len(entries))
	for _, e := range entries {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(e.Title), keyword) &&
			!strings.Contains(strings.ToLower(e.Note), keyword) {
			continue
		}
		if p.StartDate != "" && e.Date < p.StartDate {
			continue
		}
		if p.EndDate != "" && e.Date > p.EndDate {
			continue
		}
		if p.EmotionCategory != "" && e.EmotionCategory != p.EmotionCategory {
			continue
		}
		matches = append(matches, e)
	}

	slices.SortStableFunc(matches, func(a, b domain.DiaryEntry) int {
		return strings.Compare(b.Date, a.Date)
	})

	total := len(matches)
	result := domain.SearchResult{
		Entries:    []domain.DiaryEntry{},
		Total:      total,
		Page:       page,
		TotalPages: pageCount(total, limit),
	}

	// page <= TotalPages keeps (page-1)*limit below total, so it cannot overflow.
	if page > result.TotalPages {
		return result
	}
	start := (page - 1) * limit
	end := start + min(limit, total-start)
	result.Entries = matches[start:end]
	return result
}

// pageCount is ceil(total/limit) without the overflow of total+limit-1.
func pageCount(total, limit int) int {
	n := total / limit
	if total%limit != 0 {
		n++
	}
	return n
}
