package main

import (
	"time"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/internal/service/analytics"
)

type entryView struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	Title           string   `json:"title"`
	EmotionMarker   string   `json:"emotionMarker"`
	EmotionCategory string   `json:"emotionCategory"`
	Mood            string   `json:"mood"`
	Activities      []string `json:"activities"`
}

type searchView struct {
	Entries    []entryView `json:"entries"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
}

type chartPointView struct {
	BucketKey    string         `json:"bucketKey"`
	DisplayLabel string         `json:"displayLabel"`
	Counts       map[string]int `json:"counts"`
	Total        int            `json:"total"`
}

type riskView struct {
	IsAtRisk                bool     `json:"isAtRisk"`
	RiskLevel               string   `json:"riskLevel"`
	Reasons                 []string `json:"reasons"`
	RecentNegativeCount     int      `json:"recentNegativeCount"`
	ConsecutiveNegativeDays int      `json:"consecutiveNegativeDays"`
	Message                 string   `json:"message,omitempty"`
}

type riskLogView struct {
	ID            string    `json:"id"`
	RiskLevel     string    `json:"riskLevel"`
	TriggerReason string    `json:"triggerReason"`
	DetectedAt    time.Time `json:"detectedAt"`
	IsNotified    bool      `json:"isNotified"`
}

func toSearchView(r *domain.SearchResult) searchView {
	entries := make([]entryView, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, entryView{
			ID:              e.ID.String(),
			Date:            e.Date,
			Title:           e.Title,
			EmotionMarker:   e.EmotionMarker,
			EmotionCategory: e.EmotionCategory.String(),
			Mood:            e.Mood,
			Activities:      e.Activities,
		})
	}
	return searchView{Entries: entries, Total: r.Total, Page: r.Page, TotalPages: r.TotalPages}
}

func toChartView(points []domain.ChartDataPoint) []chartPointView {
	out := make([]chartPointView, 0, len(points))
	for _, p := range points {
		counts := make(map[string]int, len(p.Counts))
		for c, n := range p.Counts {
			counts[c.String()] = n
		}
		out = append(out, chartPointView{
			BucketKey:    p.BucketKey,
			DisplayLabel: p.DisplayLabel,
			Counts:       counts,
			Total:        p.Total,
		})
	}
	return out
}

func toRiskView(r *analytics.RiskReport) riskView {
	reasons := r.Analysis.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return riskView{
		IsAtRisk:                r.Analysis.IsAtRisk,
		RiskLevel:               r.Analysis.RiskLevel.String(),
		Reasons:                 reasons,
		RecentNegativeCount:     r.Analysis.RecentNegativeCount,
		ConsecutiveNegativeDays: r.Analysis.ConsecutiveNegativeDays,
		Message:                 r.Message,
	}
}

func toRiskLogViews(logs []domain.RiskLog) []riskLogView {
	out := make([]riskLogView, 0, len(logs))
	for _, l := range logs {
		out = append(out, riskLogView{
			ID:            l.ID.String(),
			RiskLevel:     l.RiskLevel.String(),
			TriggerReason: l.TriggerReason,
			DetectedAt:    l.DetectedAt,
			IsNotified:    l.IsNotified,
		})
	}
	return out
}
