// Package diary implements the diary repository using PostgreSQL.
// Dates travel as ISO strings; the column is DATE and is read back with
// to_char so ordering and comparison stay lexicographic on the Go side.
package diary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/moodbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

const (
	table  = "diary_entries"
	entity = "diary_entry"
)

var columns = []string{
	"id",
	"user_id",
	"to_char(entry_date, 'YYYY-MM-DD') AS entry_date",
	"title",
	"note",
	"emotion_marker",
	"emotion_category",
	"mood",
	"weather",
	"activities",
	"ai_comment",
	"created_at",
	"updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides diary entry persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new diary repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an entry with a fresh id. An existing row on the same date
// is superseded in place: it takes the new id and fields but keeps
// created_at, so insertion order is unchanged.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error) {
	e := domain.NewDiaryEntry(uuid.New(), userID, date, f, r.now().UTC())

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "user_id", "entry_date", "title", "note", "emotion_marker",
			"emotion_category", "mood", "weather", "activities", "ai_comment",
			"created_at", "updated_at").
		Values(e.ID, e.UserID, e.Date, e.Title, e.Note, e.EmotionMarker,
			string(e.EmotionCategory), e.Mood, e.Weather, e.Activities, e.AIComment,
			e.CreatedAt, e.UpdatedAt).
		Suffix(`ON CONFLICT (user_id, entry_date) DO UPDATE SET
			id = EXCLUDED.id,
			title = EXCLUDED.title,
			note = EXCLUDED.note,
			emotion_marker = EXCLUDED.emotion_marker,
			emotion_category = EXCLUDED.emotion_category,
			mood = EXCLUDED.mood,
			weather = EXCLUDED.weather,
			activities = EXCLUDED.activities,
			ai_comment = EXCLUDED.ai_comment,
			updated_at = EXCLUDED.updated_at ` + returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	out, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, date)
	}
	return out, nil
}

// Update rewrites the entry on date, keeping its id. A non-nil id must match
// the stored one; otherwise domain.ErrNotFound is returned.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error) {
	var e domain.DiaryEntry
	e.Apply(f, r.now().UTC())

	where := squirrel.Eq{"user_id": userID, "entry_date": date}
	if id != uuid.Nil {
		where["id"] = id
	}

	query, args, err := postgres.Builder.
		Update(table).
		Set("title", e.Title).
		Set("note", e.Note).
		Set("emotion_marker", e.EmotionMarker).
		Set("emotion_category", string(e.EmotionCategory)).
		Set("mood", e.Mood).
		Set("weather", e.Weather).
		Set("activities", e.Activities).
		Set("ai_comment", e.AIComment).
		Set("updated_at", e.UpdatedAt).
		Where(where).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", entity, err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	out, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, date)
	}
	return out, nil
}

// Delete removes the entry on date. A missing row, or a non-nil id that
// does not match, is not an error.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID, date string) error {
	where := squirrel.Eq{"user_id": userID, "entry_date": date}
	if id != uuid.Nil {
		where["id"] = id
	}

	query, args, err := postgres.Builder.Delete(table).Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", entity, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, date)
	}
	return nil
}

// DeleteByUser removes every entry of userID and reports how many went.
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

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByDate returns the entry on date or domain.ErrNotFound.
func (r *Repo) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.DiaryEntry, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "entry_date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	out, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, date)
	}
	return out, nil
}

// ListAll returns every entry of the user in insertion order.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	return r.list(ctx, postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "entry_date ASC"))
}

// ListRange returns entries with from <= date <= to, newest first.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DiaryEntry, error) {
	return r.list(ctx, postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"entry_date": from}).
		Where(squirrel.LtOrEq{"entry_date": to}).
		OrderBy("entry_date DESC"))
}

// ListByMonth returns heatmap marks for month ("YYYY-MM") sorted by date.
func (r *Repo) ListByMonth(ctx context.Context, userID uuid.UUID, month string) ([]domain.EmotionMark, error) {
	first, last, err := domain.MonthBounds(month)
	if err != nil {
		return nil, domain.NewValidationError("month", "must be YYYY-MM")
	}

	query, args, err := postgres.Builder.
		Select("to_char(entry_date, 'YYYY-MM-DD')", "emotion_marker", "emotion_category").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"entry_date": first}).
		Where(squirrel.LtOrEq{"entry_date": last}).
		OrderBy("entry_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select marks: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, month)
	}
	defer rows.Close()

	marks := []domain.EmotionMark{}
	for rows.Next() {
		var m domain.EmotionMark
		var category string
		if err := rows.Scan(&m.Date, &m.EmotionMarker, &category); err != nil {
			return nil, postgres.MapError(err, entity, month)
		}
		m.EmotionCategory = domain.EmotionCategory(category)
		marks = append(marks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, month)
	}
	return marks, nil
}

// ListUserIDs returns users that have at least one entry on or after since.
func (r *Repo) ListUserIDs(ctx context.Context, since string) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder.
		Select("DISTINCT user_id").
		From(table).
		Where(squirrel.GtOrEq{"entry_date": since}).
		OrderBy("user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select users: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "users", since)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, postgres.MapError(err, "users", since)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "users", since)
	}
	return ids, nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.DiaryEntry, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}
	defer rows.Close()

	entries := []domain.DiaryEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, entity, "list")
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.DiaryEntry, error) {
	var (
		e        domain.DiaryEntry
		category string
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.Date, &e.Title, &e.Note, &e.EmotionMarker,
		&category, &e.Mood, &e.Weather, &e.Activities, &e.AIComment,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.EmotionCategory = domain.EmotionCategory(category)
	if e.Activities == nil {
		e.Activities = []string{}
	}
	return &e, nil
}
