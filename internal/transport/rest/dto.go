package rest

import (
	"time"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/internal/service/analytics"
)

type entryRequest struct {
	ID            string   `json:"id,omitempty"`
	Date          string   `json:"date"`
	Title         string   `json:"title"`
	Note          string   `json:"note"`
	EmotionMarker string   `json:"emotionMarker"`
	Mood          string   `json:"mood"`
	Weather       *string  `json:"weather,omitempty"`
	Activities    []string `json:"activities"`
}

type entryResponse struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	Title           string    `json:"title"`
	Note            string    `json:"note"`
	EmotionMarker   string    `json:"emotionMarker"`
	EmotionCategory string    `json:"emotionCategory"`
	Mood            string    `json:"mood"`
	Weather         *string   `json:"weather,omitempty"`
	Activities      []string  `json:"activities"`
	AIComment       *string   `json:"aiComment,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toEntryResponse(e domain.DiaryEntry) entryResponse {
	activities := e.Activities
	if activities == nil {
		activities = []string{}
	}
	return entryResponse{
		ID:              e.ID.String(),
		Date:            e.Date,
		Title:           e.Title,
		Note:            e.Note,
		EmotionMarker:   e.EmotionMarker,
		EmotionCategory: string(e.EmotionCategory),
		Mood:            e.Mood,
		Weather:         e.Weather,
		Activities:      activities,
		AIComment:       e.AIComment,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toEntryResponses(entries []domain.DiaryEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

type markResponse struct {
	Date            string `json:"date"`
	EmotionMarker   string `json:"emotionMarker"`
	EmotionCategory string `json:"emotionCategory"`
}

func toMarkResponses(marks []domain.EmotionMark) []markResponse {
	out := make([]markResponse, 0, len(marks))
	for _, m := range marks {
		out = append(out, markResponse{
			Date:            m.Date,
			EmotionMarker:   m.EmotionMarker,
			EmotionCategory: string(m.EmotionCategory),
		})
	}
	return out
}

type searchResponse struct {
	Entries    []entryResponse `json:"entries"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// toChartPoint flattens the per-category counters into top-level keys, the
// shape the chart view plots directly.
func toChartPoint(p domain.ChartDataPoint) map[string]any {
	out := make(map[string]any, len(domain.EmotionCategories)+3)
	out["bucketKey"] = p.BucketKey
	out["displayLabel"] = p.DisplayLabel
	for _, c := range domain.EmotionCategories {
		out[string(c)] = p.Counts[c]
	}
	out["total"] = p.Total
	return out
}

type dailyStatResponse struct {
	Date            string `json:"date"`
	EmotionMarker   string `json:"emotionMarker"`
	EmotionCategory string `json:"emotionCategory"`
	Title           string `json:"title,omitempty"`
}

type riskAnalysisResponse struct {
	IsAtRisk                bool     `json:"isAtRisk"`
	RiskLevel               string   `json:"riskLevel"`
	Reasons                 []string `json:"reasons"`
	RecentNegativeCount     int      `json:"recentNegativeCount"`
	ConsecutiveNegativeDays int      `json:"consecutiveNegativeDays"`
}

type riskResponse struct {
	Analysis  riskAnalysisResponse      `json:"analysis"`
	Message   string                    `json:"message,omitempty"`
	Resources []supportResourceResponse `json:"resources"`
}

func toRiskResponse(r *analytics.RiskReport) riskResponse {
	reasons := r.Analysis.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return riskResponse{
		Analysis: riskAnalysisResponse{
			IsAtRisk:                r.Analysis.IsAtRisk,
			RiskLevel:               string(r.Analysis.RiskLevel),
			Reasons:                 reasons,
			RecentNegativeCount:     r.Analysis.RecentNegativeCount,
			ConsecutiveNegativeDays: r.Analysis.ConsecutiveNegativeDays,
		},
		Message:   r.Message,
		Resources: toSupportResponses(r.Resources),
	}
}

type supportResourceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	Hours       string `json:"hours"`
	Category    string `json:"category"`
}

func toSupportResponses(rs []domain.SupportResource) []supportResourceResponse {
	out := make([]supportResourceResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, supportResourceResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Phone:       r.Phone,
			Website:     r.Website,
			Hours:       r.Hours,
			Category:    string(r.Category),
		})
	}
	return out
}

type riskLogResponse struct {
	ID            string    `json:"id"`
	RiskLevel     string    `json:"riskLevel"`
	TriggerReason string    `json:"triggerReason"`
	DetectedAt    time.Time `json:"detectedAt"`
	IsNotified    bool      `json:"isNotified"`
}
