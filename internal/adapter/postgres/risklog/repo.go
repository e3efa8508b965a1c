// Package risklog persists risk verdicts in PostgreSQL.
package risklog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/moodbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

const (
	table  = "risk_logs"
	entity = "risk_log"
)

var columns = []string{"id", "user_id", "risk_level", "trigger_reason", "detected_at", "is_notified"}

// Repo provides risk log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new risk log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts l. A nil ID is replaced with a fresh one.
func (r *Repo) Create(ctx context.Context, l *domain.RiskLog) (*domain.RiskLog, error) {
	stored := *l
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(stored.ID, stored.UserID, string(stored.RiskLevel), stored.TriggerReason,
			stored.DetectedAt, stored.IsNotified).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, stored.ID.String())
	}
	return &stored, nil
}

// ListByUser returns up to limit logs for userID, newest first.
// A non-positive limit returns all of them.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskLog, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("detected_at DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, userID.String())
	}
	defer rows.Close()

	logs := []domain.RiskLog{}
	for rows.Next() {
		var (
			l     domain.RiskLog
			level string
		)
		if err := rows.Scan(&l.ID, &l.UserID, &level, &l.TriggerReason, &l.DetectedAt, &l.IsNotified); err != nil {
			return nil, postgres.MapError(err, entity, userID.String())
		}
		l.RiskLevel = domain.RiskLevel(level)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, userID.String())
	}
	return logs, nil
}

// DeleteByUser removes every log of userID and reports how many went.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query, args, err := postgres.Builder.Delete(table).Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete %s: %w", entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, userID.String())
	}
	return tag.RowsAffected(), nil
}
