package domain

// Granularity selects the chart bucket size.
type Granularity string

const (
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

func (g Granularity) String() string { return string(g) }

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityWeekly, GranularityMonthly:
		return true
	}
	return false
}

// ChartDataPoint is one time bucket with a counter per category.
// Counts always carries every category, zero or not.
type ChartDataPoint struct {
	BucketKey    string
	DisplayLabel string
	Counts       map[EmotionCategory]int
	Total        int
}

// SearchParams filters and paginates a diary collection. Empty strings mean
// "no filter"; Page and Limit of zero mean the defaults.
type SearchParams struct {
	Keyword         string
	StartDate       string
	EndDate         string
	EmotionCategory EmotionCategory
	Page            int
	Limit           int
}

// SearchResult is one page of matches.
type SearchResult struct {
	Entries    []DiaryEntry
	Total      int
	Page       int
	TotalPages int
}
