package rest

import "net/http"

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Health    *HealthHandler
	Diary     *DiaryHandler
	Analytics *AnalyticsHandler
}

// NewRouter registers all routes on a ServeMux. Literal segments such as
// /api/diaries/search take precedence over the {date} wildcard.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/diaries", h.Diary.Create)
	mux.HandleFunc("GET /api/diaries", h.Diary.List)
	mux.HandleFunc("GET /api/diaries/heatmap", h.Diary.Heatmap)
	mux.HandleFunc("GET /api/diaries/search", h.Analytics.Search)
	mux.HandleFunc("GET /api/diaries/{date}", h.Diary.Get)
	mux.HandleFunc("PUT /api/diaries/{date}", h.Diary.Update)
	mux.HandleFunc("DELETE /api/diaries/{date}", h.Diary.Delete)

	mux.HandleFunc("GET /api/stats/chart", h.Analytics.Chart)
	mux.HandleFunc("GET /api/stats/daily", h.Analytics.DailyStats)
	mux.HandleFunc("GET /api/risk", h.Analytics.Risk)
	mux.HandleFunc("GET /api/risk/history", h.Analytics.RiskHistory)
	mux.HandleFunc("GET /api/support-resources", h.Analytics.SupportResources)

	return mux
}
