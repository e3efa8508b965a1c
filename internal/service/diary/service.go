// Package diary manages a user's diary entries and the AI comment attached
// to each of them.
package diary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

type diaryRepo interface {
	Create(ctx context.Context, userID uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.DiaryEntry, error)
	Update(ctx context.Context, userID, id uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID, date string) error
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)
	ListByMonth(ctx context.Context, userID uuid.UUID, month string) ([]domain.EmotionMark, error)
}

type commenter interface {
	Comment(ctx context.Context, f domain.DiaryFields) (string, error)
}

// Service provides diary entry operations.
type Service struct {
	diaries   diaryRepo
	commenter commenter
	log       *slog.Logger
}

// NewService creates a new diary service. commenter may be nil, in which
// case entries are stored without an AI comment.
func NewService(log *slog.Logger, diaries diaryRepo, commenter commenter) *Service {
	return &Service{
		diaries:   diaries,
		commenter: commenter,
		log:       log.With("service", "diary"),
	}
}

// comment asks the commenter for a reply to f. Failures are logged and
// yield nil so the entry is still saved.
func (s *Service) comment(ctx context.Context, date string, f domain.DiaryFields) *string {
	if s.commenter == nil {
		return nil
	}

	text, err := s.commenter.Comment(ctx, f)
	if err != nil {
		s.log.WarnContext(ctx, "generate ai comment",
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
		return nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return &text
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func trimActivities(in []string) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
