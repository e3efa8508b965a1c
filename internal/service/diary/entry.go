package diary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/pkg/ctxutil"
)

// CreateEntry writes an entry for input.Date. An existing entry on that
// date is superseded by the new one.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.DiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := input.fields()
	f.AIComment = s.comment(ctx, input.Date, f)

	entry, err := s.diaries.Create(ctx, userID, input.Date, f)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("user_id", userID.String()),
		slog.String("date", entry.Date),
		slog.String("category", entry.EmotionCategory.String()),
	)
	return entry, nil
}

// GetEntry returns the entry on date.
func (s *Service) GetEntry(ctx context.Context, date string) (*domain.DiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if errs := validateDate("date", date); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	entry, err := s.diaries.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// UpdateEntry rewrites the entry on input.Date, keeping its id.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.DiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.diaries.GetByDate(ctx, userID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if input.ID != uuid.Nil && existing.ID != input.ID {
		return nil, fmt.Errorf("get entry: %w", domain.ErrNotFound)
	}

	f := input.fields()
	f.AIComment = s.comment(ctx, input.Date, f)
	if f.AIComment == nil {
		f.AIComment = existing.AIComment
	}

	entry, err := s.diaries.Update(ctx, userID, input.ID, input.Date, f)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry updated",
		slog.String("user_id", userID.String()),
		slog.String("date", entry.Date),
	)
	return entry, nil
}

// DeleteEntry removes the entry on input.Date. Deleting a missing entry
// succeeds.
func (s *Service) DeleteEntry(ctx context.Context, input DeleteEntryInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.diaries.Delete(ctx, userID, input.ID, input.Date); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// ListEntries returns every entry of the user in insertion order.
func (s *Service) ListEntries(ctx context.Context) ([]domain.DiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.diaries.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Heatmap returns the emotion marks of month ("YYYY-MM").
func (s *Service) Heatmap(ctx context.Context, month string) ([]domain.EmotionMark, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !domain.IsYearMonth(month) {
		return nil, domain.NewValidationError("month", "must be YYYY-MM")
	}

	marks, err := s.diaries.ListByMonth(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("list month: %w", err)
	}
	return marks, nil
}
