package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/internal/service/analytics"
	"github.com/heartmarshall/moodbook-backend/pkg/ctxutil"
)

//go:generate moq -out analytics_service_mock_test.go -pkg rest . analyticsService

type analyticsService interface {
	Search(ctx context.Context, input analytics.SearchInput) (*domain.SearchResult, error)
	Chart(ctx context.Context, input analytics.ChartInput) ([]domain.ChartDataPoint, error)
	DailyStats(ctx context.Context, month string) ([]domain.DailyStat, error)
	Risk(ctx context.Context) (*analytics.RiskReport, error)
	RiskHistory(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskLog, error)
}

// GET /api/risk/history returns defaultHistoryLimit logs when no limit is
// given and never more than maxHistoryLimit.
const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// AnalyticsHandler serves search, statistics and risk endpoints.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// Search handles GET /api/diaries/search.
func (h *AnalyticsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := queryInt(q.Get("page"), "page")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(q.Get("limit"), "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Search(r.Context(), analytics.SearchInput{
		Keyword:         q.Get("keyword"),
		StartDate:       q.Get("startDate"),
		EndDate:         q.Get("endDate"),
		EmotionCategory: q.Get("emotionCategory"),
		Page:            page,
		Limit:           limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Entries:    toEntryResponses(result.Entries),
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	})
}

// Chart handles GET /api/stats/chart?start=&end=&type=weekly|monthly.
func (h *AnalyticsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	points, err := h.svc.Chart(r.Context(), analytics.ChartInput{
		StartDate:   q.Get("start"),
		EndDate:     q.Get("end"),
		Granularity: q.Get("type"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]map[string]any, 0, len(points))
	for _, p := range points {
		out = append(out, toChartPoint(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// DailyStats handles GET /api/stats/daily?month=YYYY-MM.
func (h *AnalyticsHandler) DailyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.DailyStats(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]dailyStatResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, dailyStatResponse{
			Date:            s.Date,
			EmotionMarker:   s.EmotionMarker,
			EmotionCategory: string(s.EmotionCategory),
			Title:           s.Title,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Risk handles GET /api/risk.
func (h *AnalyticsHandler) Risk(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Risk(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRiskResponse(report))
}

// RiskHistory handles GET /api/risk/history?limit=.
func (h *AnalyticsHandler) RiskHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}

	limit, err := queryInt(r.URL.Query().Get("limit"), "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	logs, err := h.svc.RiskHistory(r.Context(), userID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]riskLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, riskLogResponse{
			ID:            l.ID.String(),
			RiskLevel:     string(l.RiskLevel),
			TriggerReason: l.TriggerReason,
			DetectedAt:    l.DetectedAt,
			IsNotified:    l.IsNotified,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// SupportResources handles GET /api/support-resources.
func (h *AnalyticsHandler) SupportResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSupportResponses(domain.SupportResources()))
}

// queryInt parses an optional integer query parameter; "" is zero.
func queryInt(v, field string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be an integer")
	}
	return n, nil
}
