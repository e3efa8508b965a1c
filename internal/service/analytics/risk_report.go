package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/pkg/ctxutil"
)

// RiskReport is a risk verdict with what the client shows alongside it.
type RiskReport struct {
	Analysis  domain.RiskAnalysis
	Message   string
	Resources []domain.SupportResource
}

// Risk analyses the authenticated user's recent entries.
func (s *Service) Risk(ctx context.Context) (*RiskReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	analysis, err := s.AnalyzeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := &RiskReport{
		Analysis:  analysis,
		Message:   domain.RiskNotificationMessage(analysis.RiskLevel),
		Resources: []domain.SupportResource{},
	}
	if analysis.IsAtRisk {
		report.Resources = domain.SupportResources()
	}
	return report, nil
}

// AnalyzeUser analyses the entries of the last RiskWindowDays calendar days
// ending today. Missing days are simply absent from the window. A medium or
// high verdict is recorded as a risk log; a recording failure is logged and
// does not fail the analysis.
func (s *Service) AnalyzeUser(ctx context.Context, userID uuid.UUID) (domain.RiskAnalysis, error) {
	from, to := s.RiskWindow()

	entries, err := s.diaries.ListRange(ctx, userID, from, to)
	if err != nil {
		return domain.RiskAnalysis{}, fmt.Errorf("list recent entries: %w", err)
	}

	analysis := AnalyzeRisk(entries, s.cfg.RiskWindowDays)

	if analysis.ShouldLog() && s.cfg.RiskLogEnabled {
		_, err := s.riskLogs.Create(ctx, &domain.RiskLog{
			ID:            uuid.New(),
			UserID:        userID,
			RiskLevel:     analysis.RiskLevel,
			TriggerReason: strings.Join(analysis.Reasons, "; "),
			DetectedAt:    s.now().UTC(),
		})
		if err != nil {
			s.log.ErrorContext(ctx, "record risk log",
				slog.String("user_id", userID.String()),
				slog.String("level", analysis.RiskLevel.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return analysis, nil
}

// RiskWindow returns the inclusive date range analysed for risk.
func (s *Service) RiskWindow() (from, to string) {
	today := s.now().UTC()
	return domain.FormatDate(today.AddDate(0, 0, -(s.cfg.RiskWindowDays - 1))), domain.FormatDate(today)
}

// RiskHistory returns up to limit recorded risk logs for userID, newest first.
func (s *Service) RiskHistory(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskLog, error) {
	logs, err := s.riskLogs.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list risk logs: %w", err)
	}
	return logs, nil
}
