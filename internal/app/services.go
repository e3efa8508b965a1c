package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/moodbook-backend/internal/adapter/provider/aicomment"
	"github.com/heartmarshall/moodbook-backend/internal/adapter/provider/canned"
	"github.com/heartmarshall/moodbook-backend/internal/config"
	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/internal/service/analytics"
	"github.com/heartmarshall/moodbook-backend/internal/service/diary"
)

type commenter interface {
	Comment(ctx context.Context, f domain.DiaryFields) (string, error)
}

// newCommenter picks the AI comment provider. "none" yields a nil commenter.
func newCommenter(cfg config.CommentConfig, log *slog.Logger) (commenter, error) {
	switch cfg.Provider {
	case config.CommentStub:
		return canned.New(), nil
	case config.CommentOpenAI:
		return aicomment.NewCommenter(log, aicomment.Config{
			APIKey:          cfg.OpenAIAPIKey,
			Model:           cfg.Model,
			Timeout:         cfg.Timeout,
			MaxOutputTokens: cfg.MaxOutputTokens,
		}), nil
	case config.CommentNone:
		return nil, nil
	}
	return nil, fmt.Errorf("unknown comment provider %q", cfg.Provider)
}

// AnalyticsConfig maps the config section onto the service's tuning.
func AnalyticsConfig(cfg config.AnalyticsConfig) analytics.Config {
	return analytics.Config{
		RiskWindowDays:     cfg.RiskWindowDays,
		SearchDefaultLimit: cfg.SearchDefaultLimit,
		SearchMaxLimit:     cfg.SearchMaxLimit,
		RiskLogEnabled:     cfg.RiskLogEnabled,
	}
}

// Services holds the application services built over one Storage.
type Services struct {
	Diary     *diary.Service
	Analytics *analytics.Service
}

// NewServices wires the diary and analytics services.
func NewServices(cfg *config.Config, st *Storage, log *slog.Logger) (*Services, error) {
	cm, err := newCommenter(cfg.Comment, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		Diary:     diary.NewService(log, st.Diaries, cm),
		Analytics: analytics.NewService(log, st.Diaries, st.RiskLogs, AnalyticsConfig(cfg.Analytics)),
	}, nil
}
