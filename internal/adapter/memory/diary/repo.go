// Package diary is an in-process diary repository. Data lives only as long
// as the process; it is the default for local runs and tests.
package diary

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

// book holds one user's entries. entries is the primary store, order keeps
// insertion order of date slots and marks is the heatmap index. All three
// change together under Repo.mu.
type book struct {
	entries map[string]*domain.DiaryEntry
	order   []string
	marks   map[string]domain.EmotionMark
}

func newBook() *book {
	return &book{
		entries: make(map[string]*domain.DiaryEntry),
		marks:   make(map[string]domain.EmotionMark),
	}
}

func (b *book) put(e *domain.DiaryEntry) {
	if _, ok := b.entries[e.Date]; !ok {
		b.order = append(b.order, e.Date)
	}
	b.entries[e.Date] = e
	b.marks[e.Date] = e.Mark()
}

func (b *book) remove(date string) {
	delete(b.entries, date)
	delete(b.marks, date)
	if i := slices.Index(b.order, date); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
}

// Repo is a concurrency-safe in-memory diary store keyed by user and date.
type Repo struct {
	mu    sync.RWMutex
	books map[uuid.UUID]*book
	now   func() time.Time
}

// Option configures a Repo.
type Option func(*Repo)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Repo) { r.now = now }
}

// New creates an empty repository.
func New(opts ...Option) *Repo {
	r := &Repo{
		books: make(map[uuid.UUID]*book),
		now:   time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Create stores a new entry at date with a fresh id. An entry already at
// date is superseded; its slot keeps its insertion position and CreatedAt.
func (r *Repo) Create(_ context.Context, userID uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[userID]
	if !ok {
		b = newBook()
		r.books[userID] = b
	}

	now := r.now().UTC()
	e := domain.NewDiaryEntry(uuid.New(), userID, date, f, now)
	if prev, ok := b.entries[date]; ok {
		e.CreatedAt = prev.CreatedAt
	}
	b.put(&e)

	out := e.Clone()
	return &out, nil
}

// GetByDate returns the entry at date or domain.ErrNotFound.
func (r *Repo) GetByDate(_ context.Context, userID uuid.UUID, date string) (*domain.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.lookup(userID, date)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := e.Clone()
	return &out, nil
}

// Update rewrites the entry at date, keeping its id. A non-nil id must match
// the stored one.
func (r *Repo) Update(_ context.Context, userID, id uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(userID, date)
	if !ok || (id != uuid.Nil && e.ID != id) {
		return nil, domain.ErrNotFound
	}

	updated := e.Clone()
	updated.Apply(f, r.now().UTC())
	r.books[userID].put(&updated)

	out := updated.Clone()
	return &out, nil
}

// Delete removes the entry at date. Deleting an absent date, or passing a
// non-nil id that does not match, is a no-op.
func (r *Repo) Delete(_ context.Context, userID, id uuid.UUID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(userID, date)
	if !ok || (id != uuid.Nil && e.ID != id) {
		return nil
	}
	r.books[userID].remove(date)
	return nil
}

// ListAll returns copies of every entry in insertion order.
func (r *Repo) ListAll(_ context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[userID]
	if !ok {
		return []domain.DiaryEntry{}, nil
	}

	out := make([]domain.DiaryEntry, 0, len(b.order))
	for _, date := range b.order {
		out = append(out, b.entries[date].Clone())
	}
	return out, nil
}

// ListByMonth returns heatmap marks for month ("YYYY-MM") sorted by date.
func (r *Repo) ListByMonth(_ context.Context, userID uuid.UUID, month string) ([]domain.EmotionMark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.EmotionMark{}
	b, ok := r.books[userID]
	if !ok {
		return out, nil
	}

	prefix := month + "-"
	for date, m := range b.marks {
		if strings.HasPrefix(date, prefix) {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b domain.EmotionMark) int { return strings.Compare(a.Date, b.Date) })
	return out, nil
}

// ListRange returns entries with from <= date <= to, newest first.
func (r *Repo) ListRange(_ context.Context, userID uuid.UUID, from, to string) ([]domain.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.DiaryEntry{}
	b, ok := r.books[userID]
	if !ok {
		return out, nil
	}

	for date, e := range b.entries {
		if date >= from && date <= to {
			out = append(out, e.Clone())
		}
	}
	slices.SortFunc(out, func(a, b domain.DiaryEntry) int { return strings.Compare(b.Date, a.Date) })
	return out, nil
}

// ListUserIDs returns users that have at least one entry on or after since.
func (r *Repo) ListUserIDs(_ context.Context, since string) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []uuid.UUID{}
	for userID, b := range r.books {
		for date := range b.entries {
			if date >= since {
				out = append(out, userID)
				break
			}
		}
	}
	slices.SortFunc(out, func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) })
	return out, nil
}

func (r *Repo) lookup(userID uuid.UUID, date string) (*domain.DiaryEntry, bool) {
	b, ok := r.books[userID]
	if !ok {
		return nil, false
	}
	e, ok := b.entries[date]
	return e, ok
}
