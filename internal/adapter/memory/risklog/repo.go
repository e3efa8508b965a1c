// Package risklog is an in-process risk log store.
package risklog

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

// Repo keeps risk logs per user, newest last.
type Repo struct {
	mu   sync.RWMutex
	logs map[uuid.UUID][]domain.RiskLog
}

// New creates an empty store.
func New() *Repo {
	return &Repo{logs: make(map[uuid.UUID][]domain.RiskLog)}
}

// Create appends a log. A nil ID is replaced with a fresh one.
func (r *Repo) Create(_ context.Context, l *domain.RiskLog) (*domain.RiskLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *l
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	r.logs[stored.UserID] = append(r.logs[stored.UserID], stored)
	return &stored, nil
}

// ListByUser returns up to limit logs for userID, newest first.
// A non-positive limit returns all of them.
func (r *Repo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.RiskLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := slices.Clone(r.logs[userID])
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []domain.RiskLog{}
	}
	return out, nil
}
